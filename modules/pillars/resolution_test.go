package pillars_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizardwayz/portal/modules/pillars"
	"github.com/wizardwayz/portal/pkg/pillar"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	resolver := pillars.NewResolver(pillar.MustDefaultRegistry())
	ctx := context.Background()

	tests := []struct {
		slug         string
		wantState    pillars.State
		wantName     string
		wantCategory pillar.Category
		wantOutbound string
	}{
		{slug: "metaphysics", wantState: pillars.StateFound, wantName: "Metaphysics", wantCategory: pillar.CategoryM},
		{slug: "emergence", wantState: pillars.StateFound, wantName: "Emergence", wantCategory: pillar.CategoryE},
		{
			slug:         "merchandise",
			wantState:    pillars.StateFound,
			wantName:     "Merchandise",
			wantCategory: pillar.CategoryM,
			wantOutbound: "https://wyzardwayz-were-house.myshopify.com",
		},
		{slug: "atlantis", wantState: pillars.StateNotFound},
		{slug: "not-a-real-pillar", wantState: pillars.StateNotFound},
		{slug: "Metaphysics", wantState: pillars.StateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			t.Parallel()

			res, err := resolver.Resolve(ctx, tt.slug)
			require.NoError(t, err)

			assert.Equal(t, tt.slug, res.Slug)
			assert.Equal(t, tt.wantState, res.State)
			assert.Equal(t, tt.wantName, res.Pillar.Name)
			assert.Equal(t, tt.wantCategory, res.Pillar.Category)
			assert.Equal(t, tt.wantOutbound, res.Outbound)
			assert.Equal(t, tt.wantOutbound != "", res.Redirects())
		})
	}
}

func TestResolver_IsReusable(t *testing.T) {
	t.Parallel()

	resolver := pillars.NewResolver(pillar.MustDefaultRegistry())
	ctx := context.Background()

	for range 3 {
		res, err := resolver.Resolve(ctx, "myth")
		require.NoError(t, err)
		assert.Equal(t, pillars.StateFound, res.State)

		res, err = resolver.Resolve(ctx, "atlantis")
		require.NoError(t, err)
		assert.Equal(t, pillars.StateNotFound, res.State)
	}
}

func TestResolution_Redirects(t *testing.T) {
	t.Parallel()

	assert.False(t, pillars.Resolution{State: pillars.StateNotFound, Outbound: "https://x.example"}.Redirects())
	assert.False(t, pillars.Resolution{State: pillars.StateFound}.Redirects())
	assert.True(t, pillars.Resolution{State: pillars.StateFound, Outbound: "https://x.example"}.Redirects())
}
