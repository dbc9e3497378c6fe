package severity

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acne-bot/internal/domain/entity"
)

func TestRecommend_SevereWithNodule(t *testing.T) {
	c := counts(0, 0, 0, 1)
	got := Recommend(entity.TierSevere, c)

	block := TierBlock(entity.TierSevere)
	require.Equal(t, block, got[:len(block)])

	noduleAt := slices.Index(got, NoduleNote)
	require.Equal(t, len(block), noduleAt)
	require.Equal(t, HygieneTips, got[len(got)-1])
	require.Len(t, got, len(block)+2)
}

func TestRecommend_NoNoduleNoteWithoutNodules(t *testing.T) {
	got := Recommend(entity.TierMild, counts(40, 0, 0, 0))

	assert.NotContains(t, got, NoduleNote)
	assert.NotContains(t, got, RetinoidNote)
	assert.Equal(t, append(TierBlock(entity.TierMild), HygieneTips), got)
}

func TestRecommend_Stable(t *testing.T) {
	c := counts(25, 10, 5, 2)
	require.Equal(t, Recommend(entity.TierModerate, c), Recommend(entity.TierModerate, c))
}

func TestRecommendIGA_Order(t *testing.T) {
	c := counts(35, 2, 0, 1)
	got := RecommendIGA(entity.GradeSevere, c)

	block := GradeBlock(entity.GradeSevere)
	want := append(block, NoduleWarning, RetinoidNote, HygieneTips)
	require.Equal(t, want, got)
}

func TestRecommendIGA_RetinoidThreshold(t *testing.T) {
	assert.NotContains(t, RecommendIGA(entity.GradeModerate, counts(30, 0, 0, 0)), RetinoidNote)
	assert.Contains(t, RecommendIGA(entity.GradeModerate, counts(31, 0, 0, 0)), RetinoidNote)
}

func TestRecommendIGA_Clear(t *testing.T) {
	got := RecommendIGA(entity.GradeClear, entity.LesionCounts{})
	require.Equal(t, []string{
		"Your skin is clear! Maintain your current skincare routine.",
		"Continue using gentle cleansers and moisturizers.",
		"Protect your skin with SPF 30+ daily.",
		HygieneTips,
	}, got)
}

func TestCatalogsCoverAllLevels(t *testing.T) {
	for _, tier := range []entity.SeverityTier{entity.TierMild, entity.TierModerate, entity.TierSevere} {
		assert.NotEmpty(t, TierBlock(tier), tier)
		assert.NotEmpty(t, Describe(tier), tier)
	}
	for score := 0; score <= 4; score++ {
		assert.NotEmpty(t, GradeBlock(entity.GradeForScore(score)))
	}
}

func TestTierBlockReturnsCopy(t *testing.T) {
	b := TierBlock(entity.TierMild)
	b[0] = "changed"
	assert.NotEqual(t, "changed", TierBlock(entity.TierMild)[0])
}
