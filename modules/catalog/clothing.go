package catalog

import "strings"

// ClothingChoice - 의상 옵션의 선택지 1개 (프롬프트 조각 포함)
type ClothingChoice struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	PromptText string `json:"promptText"`
}

// ClothingOption - 카테고리별 의상 선택 축 (headwear, cape 등)
// 기본 선택지는 항상 Choices의 첫 번째
type ClothingOption struct {
	ID      string           `json:"id"`
	Label   string           `json:"label"`
	Choices []ClothingChoice `json:"choices"`
}

// clothingOptions - 카테고리별 의상 옵션 정의 (축 순서 고정)
var clothingOptions = map[CategoryID][]ClothingOption{
	CategoryPets: {
		{
			ID:    "headwear",
			Label: "Headwear",
			Choices: []ClothingChoice{
				{ID: "hat", Label: "Feathered cap or crown", PromptText: "Add an elaborate feathered cap or small jeweled crown to the pet."},
				{ID: "headband", Label: "Pearl headband", PromptText: "Add a delicate pearl headband to the pet."},
				{ID: "none", Label: "No headwear", PromptText: "No headwear on the pet."},
			},
		},
		{
			ID:    "cape",
			Label: "Cape or robe",
			Choices: []ClothingChoice{
				{ID: "yes", Label: "Velvet cape", PromptText: "Dress the pet in a flowing velvet cape or regal robe."},
				{ID: "no", Label: "No cape", PromptText: "No cape or robe, just the main attire."},
			},
		},
	},
	CategoryFamily: {
		{
			ID:    "headwear",
			Label: "Headwear",
			Choices: []ClothingChoice{
				{ID: "hats", Label: "Crowns or feathered hats", PromptText: "Add crowns, feathered hats, or ornate headpieces to family members."},
				{ID: "headbands", Label: "Pearl headbands", PromptText: "Add pearl headbands or decorative hair ribbons."},
				{ID: "none", Label: "No headwear", PromptText: "No headwear on any family member."},
			},
		},
		{
			ID:    "collar",
			Label: "Collars & ruffs",
			Choices: []ClothingChoice{
				{ID: "ruffs", Label: "Elaborate ruffs", PromptText: "Add elaborate white ruffled ruffs to all subjects."},
				{ID: "lace", Label: "Simple lace collars", PromptText: "Add simple lace collars or delicate neckpieces."},
				{ID: "open", Label: "Open neck", PromptText: "Open neckline, no ruff or collar."},
			},
		},
	},
	CategoryKids: {
		{
			ID:    "headwear",
			Label: "Headwear",
			Choices: []ClothingChoice{
				{ID: "crown", Label: "Small crown", PromptText: "Add a small crown or tiara."},
				{ID: "ribbon", Label: "Ribbon or headband", PromptText: "Add a delicate ribbon or pearl headband."},
				{ID: "flower", Label: "Flower crown", PromptText: "Add a gentle flower crown or floral hairpiece."},
				{ID: "none", Label: "No headwear", PromptText: "No headwear."},
			},
		},
		{
			ID:    "jewelry",
			Label: "Jewelry",
			Choices: []ClothingChoice{
				{ID: "pearls", Label: "Pearl necklace", PromptText: "Add a delicate pearl necklace."},
				{ID: "ribbon", Label: "Ribbon bow", PromptText: "Add a ribbon bow or simple necklace."},
				{ID: "minimal", Label: "Minimal", PromptText: "Minimal jewelry, keep it simple."},
			},
		},
	},
	CategoryCouples: {
		{
			ID:    "headwear",
			Label: "Headwear",
			Choices: []ClothingChoice{
				{ID: "both-ornate", Label: "Both ornate", PromptText: "Both subjects wear ornate headwear: crowns, feathered hats, or decorative headpieces."},
				{ID: "complementary", Label: "Complementary", PromptText: "Complementary headwear: one ornate (crown/hat), one simpler (headband)."},
				{ID: "minimal", Label: "Minimal or none", PromptText: "Minimal headwear or none."},
			},
		},
		{
			ID:    "style",
			Label: "Formality",
			Choices: []ClothingChoice{
				{ID: "matching", Label: "Matching formal", PromptText: "Both wear matching formal Renaissance attire with coordinated colors."},
				{ID: "contrast", Label: "Bold & soft", PromptText: "Contrasting styles: one in bold rich fabrics, one in softer complementary tones."},
				{ID: "romantic", Label: "Romantic", PromptText: "Romantic, intimate styling with flowing fabrics and tender accessories."},
			},
		},
	},
	CategorySelf: {
		{
			ID:    "headwear",
			Label: "Headwear",
			Choices: []ClothingChoice{
				{ID: "hat", Label: "Feathered hat", PromptText: "Add an elaborate feathered cap or beret."},
				{ID: "crown", Label: "Crown or tiara", PromptText: "Add a crown, tiara, or jeweled headpiece."},
				{ID: "headband", Label: "Headband", PromptText: "Add a pearl or gold headband."},
				{ID: "none", Label: "No headwear", PromptText: "No headwear."},
			},
		},
		{
			ID:    "collar",
			Label: "Neckpiece",
			Choices: []ClothingChoice{
				{ID: "ruff", Label: "Elaborate ruff", PromptText: "Add an elaborate white ruffled ruff."},
				{ID: "lace", Label: "Lace collar", PromptText: "Add a delicate lace collar."},
				{ID: "open", Label: "Open neck", PromptText: "Open neckline, no ruff or collar."},
			},
		},
	},
}

// ClothingOptionsFor - 카테고리의 의상 옵션 목록
func ClothingOptionsFor(id CategoryID) []ClothingOption {
	return clothingOptions[id]
}

// ClothingPromptText - 선택된 의상 조각들을 옵션 축 정의 순서대로 연결
// 일치하는 선택지가 없는 축은 건너뜀, 선택이 없으면 빈 문자열
func ClothingPromptText(id CategoryID, choices map[string]string) string {
	options := clothingOptions[id]
	if len(options) == 0 {
		return ""
	}

	var parts []string
	for _, opt := range options {
		choiceID, ok := choices[opt.ID]
		if !ok {
			continue
		}
		for _, choice := range opt.Choices {
			if choice.ID == choiceID && choice.PromptText != "" {
				parts = append(parts, choice.PromptText)
				break
			}
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return "\n\nCLOTHING OPTIONS:\n" + strings.Join(parts, " ")
}
