package catalog

// ResolveStyle - 스타일 2단계 해석
// 1차: 요청 카테고리 자체 스타일 목록, 2차: 전역 라이브러리 폴백
// 카테고리와 라이브러리가 같은 ID를 정의하면 카테고리 정의가 가린다 (shadowing)
func ResolveStyle(categoryID CategoryID, styleID string) *StylePreset {
	if category := CategoryByID(categoryID); category != nil {
		for i := range category.Styles {
			if category.Styles[i].ID == styleID {
				return &category.Styles[i]
			}
		}
	}
	return StyleFromLibrary(styleID)
}

// SubStyleByID - 르네상스 하위 스타일 조회 (없으면 nil)
func SubStyleByID(subStyleID string) *SubStyle {
	for i := range RenaissanceSubStyles {
		if RenaissanceSubStyles[i].ID == subStyleID {
			return &RenaissanceSubStyles[i]
		}
	}
	return nil
}

// StylePrompt - 해석된 스타일의 프롬프트 텍스트
// 하위 스타일이 지정되고 스타일에 존재하면 SUB-STYLE 라벨로 수정 지시문을 덧붙임
// 해석 실패 시 빈 문자열 (호출자가 기본 프롬프트로 폴백)
func StylePrompt(categoryID CategoryID, styleID, subStyleID string) string {
	style := ResolveStyle(categoryID, styleID)
	if style == nil || style.PromptText == "" {
		return ""
	}
	if subStyleID != "" {
		for _, sub := range style.SubStyles {
			if sub.ID == subStyleID {
				return style.PromptText + "\n\nSUB-STYLE: " + sub.PromptModifier
			}
		}
	}
	return style.PromptText
}

// StyleTagline - 스타일 페이지용 태그라인 (카테고리 태그라인 대체)
func StyleTagline(category *Category, styleTitle string) string {
	subject := "portrait"
	switch category.ID {
	case CategoryPets:
		subject = "beloved pet"
	case CategoryFamily:
		subject = "family"
	case CategoryKids:
		subject = "kids"
	case CategoryCouples:
		subject = "couple"
	}
	return "Your " + subject + " in " + styleTitle + " style"
}

// AllStyleIDsForCategory - 카테고리에서 사용 가능한 전체 스타일 ID (카테고리 + 라이브러리)
func AllStyleIDsForCategory(categoryID CategoryID) []string {
	seen := map[string]bool{}
	var ids []string
	if category := CategoryByID(categoryID); category != nil {
		for _, s := range category.Styles {
			if !seen[s.ID] {
				seen[s.ID] = true
				ids = append(ids, s.ID)
			}
		}
	}
	for _, s := range StyleLibrary {
		if !seen[s.ID] {
			seen[s.ID] = true
			ids = append(ids, s.ID)
		}
	}
	return ids
}
