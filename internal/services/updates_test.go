package services

import (
	"testing"
	"time"

	"freelancehub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestBuildProfileUpdates(t *testing.T) {
	t.Run("empty request still refreshes updated_at", func(t *testing.T) {
		updates := buildProfileUpdates(&dto.UpdateProfileRequest{})

		require.Len(t, updates, 1)
		_, ok := updates["updated_at"].(time.Time)
		assert.True(t, ok)
	})

	t.Run("only set fields reach the update map", func(t *testing.T) {
		bio := "Updated bio"
		rate := 80.0
		updates := buildProfileUpdates(&dto.UpdateProfileRequest{
			Bio:        &bio,
			HourlyRate: &rate,
		})

		assert.Equal(t, "Updated bio", updates["bio"])
		assert.Equal(t, 80.0, updates["hourly_rate"])
		assert.NotContains(t, updates, "title")
		assert.NotContains(t, updates, "experience_level")
		assert.NotContains(t, updates, "skills")
		assert.NotContains(t, updates, "is_public")
	})

	t.Run("explicit zero values are kept", func(t *testing.T) {
		empty := ""
		zero := 0.0
		hidden := false
		updates := buildProfileUpdates(&dto.UpdateProfileRequest{
			Bio:        &empty,
			HourlyRate: &zero,
			IsPublic:   &hidden,
		})

		assert.Equal(t, "", updates["bio"])
		assert.Equal(t, 0.0, updates["hourly_rate"])
		assert.Equal(t, false, updates["is_public"])
	})

	t.Run("skills are stored JSON-encoded", func(t *testing.T) {
		updates := buildProfileUpdates(&dto.UpdateProfileRequest{
			Skills: []string{"Go", "SQL"},
		})

		assert.Equal(t, `["Go","SQL"]`, updates["skills"])
	})
}

func TestBuildPortfolioUpdates(t *testing.T) {
	t.Run("empty request still refreshes updated_at", func(t *testing.T) {
		updates := buildPortfolioUpdates(&dto.UpdatePortfolioItemRequest{})

		require.Len(t, updates, 1)
		assert.Contains(t, updates, "updated_at")
	})

	t.Run("set fields map onto their columns", func(t *testing.T) {
		title := "Renamed"
		updates := buildPortfolioUpdates(&dto.UpdatePortfolioItemRequest{
			ProjectTitle: &title,
			MediaLinks:   []string{"https://example.com/demo"},
		})

		assert.Equal(t, "Renamed", updates["project_title"])
		assert.NotContains(t, updates, "description")

		links, ok := updates["media_links"].(datatypes.JSON)
		require.True(t, ok)
		assert.JSONEq(t, `["https://example.com/demo"]`, string(links))
	})
}
