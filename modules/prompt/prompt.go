package prompt

import (
	"portrait-atelier-server/modules/catalog"
)

// PetPose - 펫 카테고리 전용 포즈 (2종만 허용)
type PetPose string

const (
	PoseStanding PetPose = "standing"
	PoseLaying   PetPose = "laying"
)

// IsValidPetPose - 포즈 값 검증
func IsValidPetPose(pose string) bool {
	return pose == string(PoseStanding) || pose == string(PoseLaying)
}

const (
	standingInstruction = " Pose the pet STANDING upright, facing the viewer, dignified noble stance."
	layingInstruction   = " Pose the pet LAYING DOWN on a luxurious velvet cushion or pillow, relaxed and regal, surrounded by rich fabric."
)

// DefaultPrompt - 스타일 해석 실패 시 폴백 (미화만, 스타일 변환 없음)
const DefaultPrompt = catalog.FacePreservation + `

` + catalog.FullFrameInstruction + `

Transform this photo into a beautiful, artistic portrait. Use soft professional lighting, elegant and timeless style. Make it look like a premium custom portrait — refined, high quality, and worthy of framing. Apply only subtle enhancement to the face.`

// Options - 프롬프트 컴파일 입력
type Options struct {
	CategoryID      catalog.CategoryID
	StyleID         string
	SubStyleID      string
	PetPose         PetPose
	ClothingChoices map[string]string
}

// BuildPortraitPrompt - 최종 지시문 조립 (순수 함수, 동일 입력 → 동일 출력)
// 순서 고정: 스타일 본문(+하위 스타일) → 풀프레임 재강조 → 펫 포즈 → 의상 선택
// 스타일 해석 실패 시에도 항상 사용 가능한 기본 지시문을 반환
func BuildPortraitPrompt(opts Options) string {
	p := catalog.StylePrompt(opts.CategoryID, opts.StyleID, opts.SubStyleID)
	if p == "" {
		p = DefaultPrompt
	}

	if opts.CategoryID != "" && opts.StyleID != "" {
		p += "\n\n" + catalog.FullFrameInstruction
	}

	// 포즈 지시문은 펫 카테고리에서만, 정확히 2종
	if opts.CategoryID == catalog.CategoryPets {
		switch opts.PetPose {
		case PoseStanding:
			p += standingInstruction
		case PoseLaying:
			p += layingInstruction
		}
	}

	if opts.CategoryID != "" && len(opts.ClothingChoices) > 0 {
		p += catalog.ClothingPromptText(opts.CategoryID, opts.ClothingChoices)
	}

	return p
}
