package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLookup(t *testing.T) {
	for _, slug := range []string{"pets", "family", "kids", "couples", "self"} {
		c := CategoryBySlug(slug)
		require.NotNil(t, c, "category %s", slug)
		assert.Equal(t, slug, c.Slug)
		assert.NotEmpty(t, c.Label)
		assert.NotEmpty(t, c.Tagline)
		assert.NotEmpty(t, c.Styles)
	}

	assert.Nil(t, CategoryBySlug("unknown"))
	assert.Nil(t, CategoryByID("wedding"))
	assert.True(t, IsValidCategory("pets"))
	assert.False(t, IsValidCategory("PETS"))
	assert.False(t, IsValidCategory(""))
}

func TestCategoryStylesCarryMandatoryBlocks(t *testing.T) {
	for _, c := range Categories {
		for _, s := range c.Styles {
			assert.Contains(t, s.PromptText, FacePreservation,
				"%s/%s must preserve the face", c.Slug, s.ID)
			assert.Contains(t, s.PromptText, FullFrameInstruction,
				"%s/%s must keep full frame", c.Slug, s.ID)
		}
	}
}

func TestLibraryFlattenDeduplicates(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range StyleLibrary {
		assert.False(t, seen[s.ID], "duplicate style id %s in flattened library", s.ID)
		seen[s.ID] = true
	}

	// 그룹 순회 순서상 첫 정의가 이긴다
	total := 0
	for _, g := range StyleGroups {
		total += len(g.Styles)
	}
	assert.LessOrEqual(t, len(StyleLibrary), total)
	assert.NotEmpty(t, StyleLibrary)
}

func TestLibraryStylesPreserveFace(t *testing.T) {
	for _, s := range StyleLibrary {
		assert.Contains(t, s.PromptText, FacePreservation, "style %s", s.ID)
	}
}

func TestResolveStyleCategoryShadowsLibrary(t *testing.T) {
	// "renaissance"는 카테고리와 라이브러리 양쪽에 존재: 카테고리 정의가 우선
	style := ResolveStyle(CategoryPets, "renaissance")
	require.NotNil(t, style)
	assert.Contains(t, style.PromptText, "FOR PETS SPECIFICALLY")

	libStyle := StyleFromLibrary("renaissance")
	require.NotNil(t, libStyle)
	assert.NotContains(t, libStyle.PromptText, "FOR PETS SPECIFICALLY")
}

func TestResolveStyleLibraryFallback(t *testing.T) {
	// 카테고리 목록에 없는 스타일은 라이브러리에서 해석
	style := ResolveStyle(CategoryFamily, "dark-academia-scholar")
	require.NotNil(t, style)
	assert.Equal(t, "Dark Academia Scholar", style.Title)

	// 미지의 카테고리라도 라이브러리 폴백은 동작
	style = ResolveStyle("unknown", "baroque-royal")
	require.NotNil(t, style)

	assert.Nil(t, ResolveStyle(CategoryPets, "no-such-style"))
}

func TestStylePrompt(t *testing.T) {
	base := StylePrompt(CategoryPets, "renaissance", "")
	require.NotEmpty(t, base)

	withSub := StylePrompt(CategoryPets, "renaissance", "baroque-red")
	require.NotEmpty(t, withSub)
	assert.True(t, strings.HasPrefix(withSub, base))
	assert.Contains(t, withSub, "\n\nSUB-STYLE: ")
	assert.Contains(t, withSub, "Baroque royal portrait style")

	// 존재하지 않는 하위 스타일은 무시
	assert.Equal(t, base, StylePrompt(CategoryPets, "renaissance", "no-such-sub"))

	// 해석 불가 시 빈 문자열
	assert.Empty(t, StylePrompt(CategoryPets, "no-such-style", ""))
}

func TestSubStyleByID(t *testing.T) {
	for _, id := range []string{"florentine", "renaissance-sky", "baroque-red", "rococo"} {
		sub := SubStyleByID(id)
		require.NotNil(t, sub, "sub-style %s", id)
		assert.NotEmpty(t, sub.PromptModifier)
		assert.Len(t, sub.Colors, 5)
	}
	assert.Nil(t, SubStyleByID("gothic"))
}

func TestSearch(t *testing.T) {
	// 2글자 미만은 빈 결과
	assert.Empty(t, Search(""))
	assert.Empty(t, Search("r"))
	assert.Empty(t, Search("  a  "))

	results := Search("renaissance")
	require.NotEmpty(t, results)
	found := false
	for _, s := range results {
		if s.ID == "renaissance" {
			found = true
		}
	}
	assert.True(t, found)

	// 대소문자/공백 무시
	assert.Equal(t, len(Search("BAROQUE")), len(Search("  baroque ")))

	// 하위 스타일 제목으로도 일치
	results = Search("florentine")
	require.NotEmpty(t, results)

	assert.Empty(t, Search("zzzznotastyle"))
}

func TestSearchMatchesKeywords(t *testing.T) {
	results := Search("chiaroscuro")
	require.NotEmpty(t, results)
	ids := map[string]bool{}
	for _, s := range results {
		ids[s.ID] = true
	}
	assert.True(t, ids["dutch-golden"])
}

func TestClothingPromptText(t *testing.T) {
	// 축 정의 순서대로 연결: pets는 headwear 다음 cape
	text := ClothingPromptText(CategoryPets, map[string]string{
		"cape":     "yes",
		"headwear": "hat",
	})
	require.NotEmpty(t, text)
	assert.True(t, strings.HasPrefix(text, "\n\nCLOTHING OPTIONS:\n"))
	hatIdx := strings.Index(text, "feathered cap")
	capeIdx := strings.Index(text, "velvet cape")
	require.Positive(t, hatIdx)
	require.Positive(t, capeIdx)
	assert.Less(t, hatIdx, capeIdx)
}

func TestClothingPromptTextSkipsUnknown(t *testing.T) {
	// 일치하지 않는 축/선택지는 건너뜀
	assert.Empty(t, ClothingPromptText(CategoryPets, nil))
	assert.Empty(t, ClothingPromptText(CategoryPets, map[string]string{"headwear": "bogus"}))
	assert.Empty(t, ClothingPromptText("unknown", map[string]string{"headwear": "hat"}))

	text := ClothingPromptText(CategoryPets, map[string]string{
		"headwear": "bogus",
		"cape":     "no",
	})
	assert.Contains(t, text, "No cape or robe")
	assert.NotContains(t, text, "feathered")
}

func TestClothingOptionsFor(t *testing.T) {
	for _, c := range Categories {
		opts := ClothingOptionsFor(c.ID)
		require.NotEmpty(t, opts, "category %s", c.Slug)
		for _, opt := range opts {
			assert.NotEmpty(t, opt.Choices, "%s/%s", c.Slug, opt.ID)
		}
	}
}

func TestAllStyleIDsForCategory(t *testing.T) {
	ids := AllStyleIDsForCategory(CategoryPets)
	require.NotEmpty(t, ids)

	seen := map[string]int{}
	for _, id := range ids {
		seen[id]++
	}
	// 카테고리와 라이브러리 양쪽의 renaissance는 한 번만
	assert.Equal(t, 1, seen["renaissance"])
}
