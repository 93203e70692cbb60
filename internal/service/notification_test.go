package service

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"eventbackend/internal/models"
)

func newNotificationFixture() (*fakeUserRepo, *fakeNotificationRepo, NotificationService) {
	users := newFakeUserRepo()
	notifications := newFakeNotificationRepo()
	svc := NewNotificationService(notifications, users, zap.NewNop())
	return users, notifications, svc
}

func TestSendTargetedUnknownUser(t *testing.T) {
	_, _, svc := newNotificationFixture()

	missing := int64(7)
	if err := svc.Send("Hello", "body", &missing); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Send() error = %v, want ErrUserNotFound", err)
	}
}

func TestSendTargeted(t *testing.T) {
	users, _, svc := newNotificationFixture()

	alice := &models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser}
	bob := &models.User{Name: "Bob", Email: "bob@example.com", Role: models.RoleUser}
	users.Create(alice)
	users.Create(bob)

	if err := svc.Send("Reminder", "Doors open at 9", &alice.ID); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	got, _ := svc.ListForUser(alice.ID)
	if len(got) != 1 {
		t.Fatalf("got %d notifications for target, want 1", len(got))
	}
	if got[0].Title != "Reminder" || got[0].Read {
		t.Errorf("unexpected notification %+v", got[0])
	}
	if others, _ := svc.ListForUser(bob.ID); len(others) != 0 {
		t.Errorf("targeted send reached %d other users", len(others))
	}
}

func TestSendBroadcastSkipsAdmins(t *testing.T) {
	users, _, svc := newNotificationFixture()

	alice := &models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser}
	bob := &models.User{Name: "Bob", Email: "bob@example.com", Role: models.RoleUser}
	admin := &models.User{Name: "Root", Email: "admin@example.com", Role: models.RoleAdmin}
	users.Create(alice)
	users.Create(bob)
	users.Create(admin)

	if err := svc.Send("Schedule change", "Keynote moved", nil); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	for _, id := range []int64{alice.ID, bob.ID} {
		if got, _ := svc.ListForUser(id); len(got) != 1 {
			t.Errorf("user %d got %d notifications, want 1", id, len(got))
		}
	}
	if got, _ := svc.ListForUser(admin.ID); len(got) != 0 {
		t.Errorf("admin got %d notifications, want 0", len(got))
	}
}

func TestMarkReadOwnership(t *testing.T) {
	users, notifications, svc := newNotificationFixture()

	alice := &models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser}
	bob := &models.User{Name: "Bob", Email: "bob@example.com", Role: models.RoleUser}
	users.Create(alice)
	users.Create(bob)

	n := &models.Notification{UserID: alice.ID, Title: "Hi", Message: "Welcome"}
	notifications.Create(n)

	if err := svc.MarkRead(n.ID, bob.ID); !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("MarkRead() by non-owner error = %v, want ErrNotificationNotFound", err)
	}
	if err := svc.MarkRead(99, alice.ID); !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("MarkRead() of missing id error = %v, want ErrNotificationNotFound", err)
	}

	if err := svc.MarkRead(n.ID, alice.ID); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	stored, _ := notifications.GetByID(n.ID)
	if !stored.Read {
		t.Error("notification not marked read")
	}
}

func TestListForUserNewestFirst(t *testing.T) {
	users, notifications, svc := newNotificationFixture()

	alice := &models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser}
	users.Create(alice)

	notifications.Create(&models.Notification{UserID: alice.ID, Title: "first", Message: "1"})
	notifications.Create(&models.Notification{UserID: alice.ID, Title: "second", Message: "2"})

	got, err := svc.ListForUser(alice.ID)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(got) != 2 || got[0].Title != "second" || got[1].Title != "first" {
		t.Errorf("unexpected order: %+v", got)
	}
}
