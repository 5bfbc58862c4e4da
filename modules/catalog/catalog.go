package catalog

// CategoryID - 카테고리 식별자 (고정된 5종)
type CategoryID string

const (
	CategoryPets    CategoryID = "pets"
	CategoryFamily  CategoryID = "family"
	CategoryKids    CategoryID = "kids"
	CategoryCouples CategoryID = "couples"
	CategorySelf    CategoryID = "self"
)

// SubStyle - 스타일 하위 변형 (Florentine, Baroque Red 등)
type SubStyle struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	// PromptModifier - 부모 스타일 프롬프트 뒤에 붙는 수정 지시문
	PromptModifier string `json:"promptModifier"`
	// Colors - UI 표시용 색상 스와치 (hex)
	Colors []string `json:"colors"`
}

// StylePreset - 스타일 정의 (카테고리 소속 또는 라이브러리 소속)
// SearchKeywords는 라이브러리 검색용, 카테고리 전용 스타일은 비워둠
type StylePreset struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	PromptText     string     `json:"promptText"`
	SubStyles      []SubStyle `json:"subStyles,omitempty"`
	SearchKeywords []string   `json:"searchKeywords,omitempty"`
}

// Category - 포트레이트 카테고리 설정 (프로세스 시작 시 고정, 불변)
type Category struct {
	ID      CategoryID    `json:"id"`
	Label   string        `json:"label"`
	Slug    string        `json:"slug"`
	Tagline string        `json:"tagline"`
	Styles  []StylePreset `json:"styles"`
}

// FacePreservation - 얼굴 보존 필수 지시문 (모든 프롬프트에 포함)
const FacePreservation = `CRITICAL - FACE PRESERVATION:
- Keep the subject's face COMPLETELY recognizable - virtually identical to the original photo
- Preserve all facial features, expressions, and likeness exactly as they appear
- Only apply subtle oil painting texture to the face, no other modifications
- Do NOT change face shape, features, or appearance`

// FullFrameInstruction - 크롭 방지 지시문 (피사체 전체가 프레임 안에 보이도록)
const FullFrameInstruction = `CRITICAL - FRAMING AND COMPOSITION:
- Show the ENTIRE face and subject in the image. Do NOT crop, zoom in, or cut off any part of the face, head, or body.
- Keep the same framing as the original photo: if the original shows head and shoulders, show full head and shoulders; if it shows full body or multiple people, show all of them fully in frame.
- Ensure every person or pet in the photo is fully visible with no body parts cut off at the edges.`

const renaissanceBase = `Transform this photo into a Renaissance noble portrait in the style of 15th-16th century European masters.

` + FacePreservation + `

` + FullFrameInstruction + `

ADD RENAISSANCE ELEMENTS:
- Replace clothing with period-appropriate attire (specific colors and styles come from the chosen sub-style)
- Add period jewelry: pearl necklaces, gold chains, jeweled brooches, ornate rings, decorative headpieces
- Include Renaissance accessories: feathered hats, lace collars (ruffs), embroidered gloves, decorative belts
- Use rich fabrics: velvet, silk, brocade
- Add a classical background (colors and style from chosen sub-style)

ARTISTIC STYLE:
- Classical oil painting technique with visible brushwork
- Use the exact color palette specified in the sub-style for clothing, jewelry, and background
- Museum-quality, gallery-worthy composition
- Dignified, noble pose`

// RenaissanceSubStyles - 르네상스 계열 공통 하위 스타일 4종
var RenaissanceSubStyles = []SubStyle{
	{
		ID:          "florentine",
		Title:       "Florentine Renaissance",
		Description: "Timeless elegance with refined brushwork and classical composition.",
		PromptModifier: `Florentine Renaissance style inspired by Botticelli and early Italian masters.
CLOTHING & FABRICS: Wear flowing robes in deep burgundy/maroon (#6B2D2D), cream silk undershirts (#FFFFFF), and golden tan brocade accents (#C4A574). Delicate gold jewelry (#D4AF37). Dark charcoal background (#2C2C2C).
STYLE: Refined delicate brushwork, soft sfumato, classical composition. Graceful poses, balanced proportions. Warm golden light. Timeless elegance.`,
		Colors: []string{"#6B2D2D", "#C4A574", "#FFFFFF", "#D4AF37", "#2C2C2C"},
	},
	{
		ID:          "renaissance-sky",
		Title:       "Renaissance Sky",
		Description: "Atmospheric Renaissance style with dramatic lighting and old master quality.",
		PromptModifier: `Renaissance Sky / Caravaggio style with dramatic chiaroscuro.
CLOTHING & FABRICS: Wear dark brown leather and earth-toned robes (#3D2C1E), silver-grey silk accents (#9E9E9E), white lace collars (#FFFFFF). Gold chain jewelry (#D4AF37). Deep navy blue atmospheric background (#1A2A3A).
STYLE: Moody theatrical lighting, rich shadows, dramatic highlights. Old master quality. Atmospheric depth. Theatrical composition.`,
		Colors: []string{"#3D2C1E", "#9E9E9E", "#FFFFFF", "#D4AF37", "#1A2A3A"},
	},
	{
		ID:          "baroque-red",
		Title:       "Baroque Red",
		Description: "Classic royal portrait with rich velvet drapes and golden baroque frames.",
		PromptModifier: `Baroque royal portrait style, 17th-century European court.
CLOTHING & FABRICS: Wear vibrant crimson and deep red velvet (#8B0000), golden brocade embroidery (#D4AF37), silver-trimmed accessories (#C0C0C0), white ruffs (#FFFFFF). Olive green velvet accents (#6B8E23). Rich velvet drapes in background.
STYLE: Opulent, luxurious. Golden baroque ornamental details. Jewel tones. Dramatic court lighting.`,
		Colors: []string{"#8B0000", "#D4AF37", "#C0C0C0", "#FFFFFF", "#6B8E23"},
	},
	{
		ID:          "rococo",
		Title:       "Rococo",
		Description: "Vibrant painterly style with bold brushstrokes and rich color harmony.",
		PromptModifier: `Rococo style, 18th-century French court aesthetic.
CLOTHING & FABRICS: Wear pale mint green silk (#4A7C59), light pink satin and rose accents (#E8A0A0), white lace and ribbons (#FFFFFF), cream and tan brocade (#C4A574). Golden decorative elements (#D4AF37).
STYLE: Vibrant painterly look, bold visible brushstrokes. Soft pastels, rich color harmony. Elegant, light, decorative. Playful ornate details.`,
		Colors: []string{"#4A7C59", "#E8A0A0", "#FFFFFF", "#C4A574", "#D4AF37"},
	},
}

// Categories - 전체 카테고리 설정 (시작 시 1회 초기화, 이후 수정 금지)
var Categories = []Category{
	{
		ID:      CategoryPets,
		Label:   "Pet Portraits",
		Slug:    "pets",
		Tagline: "Your beloved pet as Renaissance royalty",
		Styles: []StylePreset{
			{
				ID:          "renaissance",
				Title:       "Renaissance",
				Description: "Classical oil painting style inspired by European masters. Regal, timeless, museum-quality.",
				SubStyles:   RenaissanceSubStyles,
				PromptText: renaissanceBase + `

FOR PETS SPECIFICALLY:
- Keep the pet's face and features completely recognizable
- Dress the pet in miniature Renaissance royal attire or place on luxurious velvet cushions with gold tassels
- Add a small jeweled collar or decorative accessories appropriate for nobility
- Position on ornate furniture or with rich fabric draping`,
			},
		},
	},
	{
		ID:      CategoryFamily,
		Label:   "Family",
		Slug:    "family",
		Tagline: "Your family immortalized in classic style",
		Styles: []StylePreset{
			{
				ID:          "renaissance",
				Title:       "Renaissance",
				Description: "Classical oil painting style inspired by European masters. Elegant, timeless, gallery-worthy.",
				SubStyles:   RenaissanceSubStyles,
				PromptText: renaissanceBase + `

FOR FAMILIES SPECIFICALLY:
- Keep all family members' faces completely recognizable and unchanged
- Dress each person in coordinated Renaissance noble attire appropriate to their age
- Add family jewelry: matching brooches, coordinated necklaces, or family crests
- Create a formal family portrait composition with elegant poses`,
			},
		},
	},
	{
		ID:      CategoryKids,
		Label:   "Kids",
		Slug:    "kids",
		Tagline: "Capture their wonder in timeless art",
		Styles: []StylePreset{
			{
				ID:          "renaissance",
				Title:       "Renaissance",
				Description: "Gentle, classical oil painting style. Soft lighting, warm tones, age-appropriate elegance.",
				SubStyles:   RenaissanceSubStyles,
				PromptText: renaissanceBase + `

FOR CHILDREN SPECIFICALLY:
- Keep the child's face completely recognizable and unchanged
- Dress in age-appropriate Renaissance children's attire: soft velvet dresses or doublets with delicate embroidery
- Add gentle accessories: small pearl necklaces, ribbon headbands, or simple gold chains
- Use softer, warmer lighting and tender, innocent poses
- Include playful Renaissance elements like flowers or small toys from the period`,
			},
		},
	},
	{
		ID:      CategoryCouples,
		Label:   "Couples",
		Slug:    "couples",
		Tagline: "Your love story in classical elegance",
		Styles: []StylePreset{
			{
				ID:          "renaissance",
				Title:       "Renaissance",
				Description: "Romantic classical oil painting. Elegant, tender, museum-quality.",
				SubStyles:   RenaissanceSubStyles,
				PromptText: renaissanceBase + `

FOR COUPLES SPECIFICALLY:
- Keep both subjects' faces completely recognizable and unchanged
- Dress both in coordinated Renaissance noble attire that complements each other
- Add romantic jewelry: matching rings, complementary necklaces, intertwined elements
- Create an intimate, romantic composition with elegant poses showing connection
- Use warm, flattering lighting that enhances the romantic mood`,
			},
		},
	},
	{
		ID:      CategorySelf,
		Label:   "Self",
		Slug:    "self",
		Tagline: "Your portrait as a work of art",
		Styles: []StylePreset{
			{
				ID:          "renaissance",
				Title:       "Renaissance",
				Description: "Professional classical oil painting. Refined, distinguished, gallery-quality.",
				SubStyles:   RenaissanceSubStyles,
				PromptText: renaissanceBase + `

FOR SELF PORTRAITS SPECIFICALLY:
- Keep the subject's face completely recognizable and unchanged
- Dress in distinguished Renaissance noble attire: elaborate doublet or gown with rich embroidery
- Add prominent jewelry: statement necklace, ornate rings, jeweled brooch, or decorative headpiece
- Create a powerful, confident pose befitting Renaissance nobility
- Use dramatic lighting to create depth and gravitas`,
			},
		},
	},
}

var (
	categoryBySlug = map[string]*Category{}
	categoryByID   = map[CategoryID]*Category{}
)

func init() {
	for i := range Categories {
		c := &Categories[i]
		categoryBySlug[c.Slug] = c
		categoryByID[c.ID] = c
	}
}

// CategoryBySlug - URL slug로 카테고리 조회 (없으면 nil)
func CategoryBySlug(slug string) *Category {
	return categoryBySlug[slug]
}

// CategoryByID - ID로 카테고리 조회 (없으면 nil)
func CategoryByID(id CategoryID) *Category {
	return categoryByID[id]
}

// IsValidCategory - 카테고리 ID 유효성 검사
func IsValidCategory(id string) bool {
	_, ok := categoryByID[CategoryID(id)]
	return ok
}

// StylesForCategory - 카테고리 소속 스타일 목록
func StylesForCategory(id CategoryID) []StylePreset {
	if c := CategoryByID(id); c != nil {
		return c.Styles
	}
	return nil
}

// CategorySlugs - 전체 카테고리 slug 목록
func CategorySlugs() []string {
	slugs := make([]string, 0, len(Categories))
	for _, c := range Categories {
		slugs = append(slugs, c.Slug)
	}
	return slugs
}
