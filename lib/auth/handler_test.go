package authhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fnb-tracking-backend/config"
	auditloghandler "fnb-tracking-backend/lib/audit-log"
	"fnb-tracking-backend/models"
	auditapimodels "fnb-tracking-backend/models/api/audit"
	authapimodels "fnb-tracking-backend/models/api/auth"
	dbmodels "fnb-tracking-backend/models/db"
)

type fakeUserStore struct {
	byFNumber map[string]*dbmodels.User
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error)  { return "", nil }
func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) { return nil, nil }
func (f *fakeUserStore) GetByFNumber(fNumber string) (*dbmodels.User, error) {
	return f.byFNumber[fNumber], nil
}
func (f *fakeUserStore) ExistByFNumber(fNumber string) (bool, error)           { return false, nil }
func (f *fakeUserStore) List() ([]dbmodels.User, error)                        { return nil, nil }
func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeUserStore) Delete(id string) error                                { return nil }

type fakeAuditor struct {
	actions []models.ActionType
	ips     []string
}

func (f *fakeAuditor) LogAction(userID *string, action models.ActionType, entityType models.EntityType, entityID, description, ipAddress string) {
	f.actions = append(f.actions, action)
	f.ips = append(f.ips, ipAddress)
}

func (f *fakeAuditor) List(userID string, date string) ([]auditapimodels.LogView, error) {
	return nil, nil
}

func TestLogin(t *testing.T) {
	if config.Conf == nil {
		conf := new(config.Configuration)
		conf.Auth.JWTSecret = "test-secret"
		conf.Auth.JWTExpireInSec = 3600
		config.Conf = conf
	}
	auditor := &fakeAuditor{}
	auditloghandler.Instance = auditor

	user := &dbmodels.User{
		FNumber:  "F12345",
		Password: "s3cret",
		Role:     models.UserRoleNormal,
		IsActive: true,
	}
	user.ID = "u1"
	suspended := &dbmodels.User{
		FNumber:  "F99999",
		Password: "s3cret",
		Role:     models.UserRoleNormal,
		IsActive: false,
	}
	suspended.ID = "u2"
	handler := impl{store: &fakeUserStore{byFNumber: map[string]*dbmodels.User{
		"F12345": user,
		"F99999": suspended,
	}}}

	t.Run(`unknown f-number is forbidden`, func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Username: "F00000", Password: "s3cret"}, "10.0.0.1")
		require.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run(`wrong password is forbidden`, func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Username: "F12345", Password: "wrong"}, "10.0.0.1")
		require.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run(`suspended account is forbidden`, func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Username: "F99999", Password: "s3cret"}, "10.0.0.1")
		require.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run(`valid login issues a token and an audit row`, func(t *testing.T) {
		resp, err := handler.Login(authapimodels.LoginRequest{Username: "F12345", Password: "s3cret"}, "10.0.0.1")
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, "F12345", resp.FNumber)
		require.Equal(t, string(models.UserRoleNormal), resp.Role)
		require.Equal(t, []models.ActionType{models.ActionLogin}, auditor.actions)
		require.Equal(t, []string{"10.0.0.1"}, auditor.ips)
	})
}
