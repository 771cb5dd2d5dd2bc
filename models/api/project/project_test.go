package projectapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fnb-tracking-backend/models"
)

func TestStatusUpdateData(t *testing.T) {
	t.Run(`unknown status fails validation`, func(t *testing.T) {
		err := StatusUpdateData{Status: "SHIPPED"}.Validate()
		require.NotNil(t, err)
		require.ErrorIs(t, err, models.ErrValidation)

		err = StatusUpdateData{Status: "REJECTED"}.Validate()
		require.Nil(t, err)
	})

	t.Run(`reason kept only for rejection`, func(t *testing.T) {
		data := StatusUpdateData{Status: "REJECTED", RejectionReason: "  missing budget approval  "}
		require.Equal(t, "missing budget approval", data.Reason())

		data = StatusUpdateData{Status: "APPROVED", RejectionReason: "should be dropped"}
		require.Equal(t, "", data.Reason())
	})

	t.Run(`blank reason stays blank`, func(t *testing.T) {
		data := StatusUpdateData{Status: "REJECTED", RejectionReason: "   "}
		require.Equal(t, "", data.Reason())
	})
}

func TestProjectDataValidate(t *testing.T) {
	t.Run(`name required`, func(t *testing.T) {
		err := ProjectData{Priority: "HIGH"}.Validate()
		require.NotNil(t, err)
	})

	t.Run(`priority must be known`, func(t *testing.T) {
		err := ProjectData{ProjectName: "CRM", Priority: "URGENT"}.Validate()
		require.NotNil(t, err)

		err = ProjectData{ProjectName: "CRM", Priority: "MEDIUM"}.Validate()
		require.Nil(t, err)
	})
}
