package dashboard

import (
	"context"

	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/identity"
	"go.uber.org/zap"
)

// UserController drives the customers tab. Profiles carrying the admin
// role are filtered out before they ever enter the collection array, so
// they are invisible to both the rendered list and the page count: an
// administrator is not a manageable customer record.
type UserController struct {
	listController[identity.User]
}

// NewUserController creates the customers tab controller.
func NewUserController(
	store document.Store,
	renderer Renderer,
	notifier Notifier,
	logger *zap.Logger,
) *UserController {
	c := &UserController{}
	c.listController = listController[identity.User]{
		collection: document.Users,
		store:      store,
		renderer:   renderer,
		notifier:   notifier,
		logger:     logger,
		decode:     identity.ParseUser,
		keep: func(u identity.User) bool {
			return !u.IsAdmin()
		},
		eventTime:     identity.User.EventTime,
		deletePrompt:  "Are you sure you want to delete this user? This action cannot be undone.",
		deletedMsg:    "User deleted successfully!",
		deleteFailMsg: "Failed to delete user. Please try again.",
	}
	c.present = c.presentPage
	return c
}

func (c *UserController) presentPage(_ context.Context, users []identity.User) any {
	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}
	return views
}
