package catalog

import "strings"

// StyleGroup - 카테고리 페이지의 펼침 목록 단위, 라이브러리 평탄화의 원본
type StyleGroup struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Styles []StylePreset `json:"styles"`
}

// libraryStyle - 얼굴 보존 지시문을 앞에 붙인 라이브러리 스타일 생성 헬퍼
func libraryStyle(id, title, description string, keywords []string, instructions string) StylePreset {
	return StylePreset{
		ID:             id,
		Title:          title,
		Description:    description,
		SearchKeywords: keywords,
		PromptText:     FacePreservation + "\n\n" + instructions,
	}
}

// StyleGroups - 전체 스타일 그룹 (표시 순서 고정)
var StyleGroups = []StyleGroup{
	{
		ID:    "classic-art",
		Title: "Classic Art & Historical",
		Styles: []StylePreset{
			{
				ID:             "renaissance",
				Title:          "Renaissance Oil Painting",
				Description:    "15th-16th century European masters.",
				SearchKeywords: []string{"renaissance", "oil", "classical", "old master"},
				SubStyles:      RenaissanceSubStyles,
				PromptText:     renaissanceBase,
			},
			libraryStyle("baroque-royal", "Baroque Royal Portrait", "Rich velvet drapes, golden baroque frames.",
				[]string{"baroque", "royal", "velvet", "golden"},
				"Transform into Baroque royal portrait. 17th-century European court. Rich crimson velvet, golden brocade, white ruffs. Opulent, luxurious. Replace clothing and background only."),
			libraryStyle("rococo-elegance", "Rococo Elegance", "Vibrant painterly style with bold brushstrokes.",
				[]string{"rococo", "elegance", "pastels", "french court"},
				"Transform into Rococo portrait. 18th-century French court. Pale mint silk, pink satin, cream brocade. Soft pastels, rich color harmony. Replace clothing and background only."),
			libraryStyle("neoclassical", "Neoclassical Sculpture Style", "Clean lines, marble-like elegance.",
				[]string{"neoclassical", "sculpture", "marble", "greek"},
				"Transform into Neoclassical portrait. Sculptural, marble-like elegance. Clean lines, classical drapery. Greek/Roman inspired. Replace clothing and background only."),
			libraryStyle("victorian-era", "Victorian Era Portrait", "Formal Victorian period style.",
				[]string{"victorian", "era", "formal", "19th century"},
				"Transform into Victorian era portrait. Formal period attire. Dark fabrics, high collars. Moody, dignified. Replace clothing and background only."),
			libraryStyle("edwardian", "Edwardian Aristocracy", "Elegant Edwardian country estate.",
				[]string{"edwardian", "aristocracy", "estate", "elegant"},
				"Transform into Edwardian aristocracy portrait. Country estate elegance. Refined period attire. Soft natural light. Replace clothing and background only."),
			libraryStyle("georgian", "Georgian Noble Painting", "18th-century Georgian noble style.",
				[]string{"georgian", "noble", "18th century"},
				"Transform into Georgian noble portrait. 18th-century style. Rich fabrics, formal pose. Classical oil painting. Replace clothing and background only."),
			libraryStyle("dutch-golden", "Dutch Golden Age", "Rembrandt-inspired chiaroscuro.",
				[]string{"dutch", "golden age", "rembrandt", "chiaroscuro"},
				"Transform into Dutch Golden Age portrait. Rembrandt-inspired chiaroscuro. Warm browns, dramatic light. Classical oil painting. Replace clothing and background only."),
			libraryStyle("romanticism", "Romanticism Painting", "Emotional, dramatic Romantic era.",
				[]string{"romanticism", "romantic", "emotional", "dramatic"},
				"Transform into Romanticism portrait. Emotional, dramatic. Nature-inspired, moody lighting. Romantic era aesthetic. Replace clothing and background only."),
			libraryStyle("pre-raphaelite", "Pre-Raphaelite Style", "Vivid, medieval-inspired Pre-Raphaelite.",
				[]string{"pre-raphaelite", "medieval", "vivid", "art nouveau"},
				"Transform into Pre-Raphaelite portrait. Vivid colors, medieval-inspired. Flowing hair, nature elements. Dreamy, romantic. Replace clothing and background only."),
		},
	},
	{
		ID:    "royal-elite",
		Title: "Royal, Elite & Prestige",
		Styles: []StylePreset{
			libraryStyle("british-aristocracy", "British Aristocracy", "Regal British noble style.",
				[]string{"british", "aristocracy", "noble", "regal"},
				"Transform into British aristocracy portrait. Regal noble attire. Velvet, fur trim, pearls. Country estate background. Replace clothing and background only."),
			libraryStyle("royal-court", "Royal Court Portrait", "Grand royal court style.",
				[]string{"royal", "court", "crown", "throne"},
				"Transform into royal court portrait. Crown or tiara. Formal court attire. Throne room or palace. Replace clothing and background only."),
			libraryStyle("country-manor", "Country Manor Painting", "Estate manor portrait style.",
				[]string{"country", "manor", "estate", "landed"},
				"Transform into country manor portrait. Landed gentry style. Refined country attire. Manor house background. Replace clothing and background only."),
			libraryStyle("heritage-museum", "Heritage Museum Display", "Museum-quality heritage portrait.",
				[]string{"heritage", "museum", "display", "gallery"},
				"Transform into heritage museum portrait. Gallery-quality. Formal historical attire. Museum display aesthetic. Replace clothing and background only."),
			libraryStyle("dynasty-portrait", "Dynasty Portrait", "Noble lineage, family dynasty.",
				[]string{"dynasty", "lineage", "noble", "family"},
				"Transform into dynasty portrait. Noble lineage style. Formal hereditary attire. Grand family portrait aesthetic. Replace clothing and background only."),
		},
	},
	{
		ID:    "dark-academia",
		Title: "Dark Academia & Intellectual",
		Styles: []StylePreset{
			libraryStyle("dark-academia-scholar", "Dark Academia Scholar", "Moody scholarly portrait.",
				[]string{"dark academia", "scholar", "moody", "intellectual"},
				"Transform into Dark Academia scholar portrait. Moody, scholarly. Books, tweed, warm lamplight. Library or study. Replace clothing and background only."),
			libraryStyle("candlelit-library", "Candlelit Library Portrait", "Intimate library by candlelight.",
				[]string{"candlelit", "library", "candles", "books"},
				"Transform into candlelit library portrait. Intimate study. Leather-bound books. Warm candlelight. Replace clothing and background only."),
			libraryStyle("gothic-study", "Gothic Study Room", "Gothic study atmosphere.",
				[]string{"gothic", "study", "dark", "moody"},
				"Transform into gothic study portrait. Dark, atmospheric. Stone walls, candlelight. Scholarly gothic aesthetic. Replace clothing and background only."),
			libraryStyle("oxford-don", "Oxford Don Aesthetic", "Academic Oxford don style.",
				[]string{"oxford", "don", "academic", "ivy league"},
				"Transform into Oxford don portrait. Academic, distinguished. Tweed, spectacles. University library. Replace clothing and background only."),
			libraryStyle("classical-philosophy", "Classical Philosophy Portrait", "Philosopher, thinker aesthetic.",
				[]string{"philosophy", "philosopher", "thinker", "classical"},
				"Transform into classical philosophy portrait. Thinker, scholar. Classical robes or academic attire. Ancient library. Replace clothing and background only."),
			libraryStyle("midnight-academia", "Midnight Academia", "Late-night scholarly mood.",
				[]string{"midnight", "academia", "night", "study"},
				"Transform into midnight academia portrait. Late-night study. Moonlight, lamp. Dark scholarly mood. Replace clothing and background only."),
		},
	},
	{
		ID:    "storybook-whimsical",
		Title: "Storybook & Whimsical",
		Styles: []StylePreset{
			libraryStyle("classic-storybook", "Classic Storybook Illustration", "Beloved children's book style.",
				[]string{"storybook", "illustration", "children", "classic"},
				"Transform into classic storybook illustration. Whimsical, illustrated. Soft lines, gentle colors. Children's book aesthetic. Replace clothing and background only."),
			libraryStyle("fairytale-art", "Children's Fairytale Art", "Magical fairytale illustration.",
				[]string{"fairytale", "children", "magical", "enchanted"},
				"Transform into children's fairytale art. Magical, enchanting. Soft colors, dreamy. Storybook aesthetic. Replace clothing and background only."),
			libraryStyle("hand-painted-watercolour", "Hand-Painted Watercolour", "Delicate watercolour washes.",
				[]string{"watercolour", "watercolor", "hand painted", "soft"},
				"Transform into hand-painted watercolour portrait. Delicate washes, flowing colors. Dreamy, artistic. Replace clothing and background only."),
			libraryStyle("soft-pastel", "Soft Pastel Illustration", "Gentle pastel tones.",
				[]string{"pastel", "soft", "gentle", "dreamy"},
				"Transform into soft pastel illustration. Gentle tones, dreamy. Chalk-like texture. Whimsical aesthetic. Replace clothing and background only."),
			libraryStyle("whimsical-fantasy", "Whimsical Fantasy", "Playful fantasy style.",
				[]string{"whimsical", "fantasy", "playful", "magical"},
				"Transform into whimsical fantasy portrait. Playful, magical. Soft fantasy elements. Dreamy aesthetic. Replace clothing and background only."),
			libraryStyle("enchanted-forest", "Enchanted Forest Style", "Magical forest setting.",
				[]string{"enchanted", "forest", "magical", "nature"},
				"Transform into enchanted forest portrait. Magical woodland. Soft fantasy lighting. Nature-inspired. Replace clothing and background only."),
			libraryStyle("picture-book-art", "Picture Book Art", "Illustrated picture book style.",
				[]string{"picture book", "illustration", "children"},
				"Transform into picture book art portrait. Illustrated, storybook. Warm, friendly. Children's book aesthetic. Replace clothing and background only."),
		},
	},
	{
		ID:    "fantasy-mythical",
		Title: "Fantasy & Mythical",
		Styles: []StylePreset{
			libraryStyle("high-fantasy-kingdom", "High Fantasy Kingdom", "Medieval fantasy world.",
				[]string{"high fantasy", "kingdom", "medieval", "fantasy"},
				"Transform into high fantasy kingdom portrait. Medieval fantasy world. Noble or heroic attire. Castle, mountains. Replace clothing and background only."),
			libraryStyle("epic-medieval-fantasy", "Epic Medieval Fantasy", "Epic fantasy hero style.",
				[]string{"epic", "medieval", "fantasy", "hero"},
				"Transform into epic medieval fantasy portrait. Heroic fantasy attire. Dramatic lighting. Fantasy world. Replace clothing and background only."),
			libraryStyle("mythical-hero", "Mythical Hero Portrait", "Legendary hero aesthetic.",
				[]string{"mythical", "hero", "legendary", "epic"},
				"Transform into mythical hero portrait. Legendary hero attire. Dramatic, epic. Fantasy world. Replace clothing and background only."),
			libraryStyle("elven-nobility", "Elven Nobility", "Elegant elven noble style.",
				[]string{"elven", "elf", "nobility", "fantasy"},
				"Transform into elven nobility portrait. Elegant elven attire. Ethereal, refined. Fantasy forest. Replace clothing and background only."),
			libraryStyle("dark-fantasy-world", "Dark Fantasy World", "Moody dark fantasy style.",
				[]string{"dark fantasy", "moody", "gothic"},
				"Transform into dark fantasy world portrait. Moody, dramatic. Dark fantasy attire. Atmospheric. Replace clothing and background only."),
			libraryStyle("legendary-warrior", "Legendary Warrior", "Epic warrior portrait.",
				[]string{"legendary", "warrior", "epic", "battle"},
				"Transform into legendary warrior portrait. Epic battle attire. Heroic pose. Fantasy world. Replace clothing and background only."),
			libraryStyle("sword-sorcery", "Sword & Sorcery", "Classic sword and sorcery style.",
				[]string{"sword", "sorcery", "fantasy", "adventure"},
				"Transform into sword and sorcery portrait. Adventurer attire. Fantasy world. Classic fantasy aesthetic. Replace clothing and background only."),
		},
	},
	{
		ID:    "rpg-game",
		Title: "RPG / Game-Inspired",
		Styles: []StylePreset{
			libraryStyle("high-fantasy-rpg", "High-Fantasy RPG Character", "Fantasy RPG hero style.",
				[]string{"rpg", "fantasy", "game", "character"},
				"Transform into high-fantasy RPG character portrait. Adventurer, heroic. Game art style. Fantasy world. Replace clothing and background only."),
			libraryStyle("fantasy-champion", "Fantasy Champion Style", "Champion hero portrait.",
				[]string{"champion", "fantasy", "hero", "game"},
				"Transform into fantasy champion portrait. Heroic champion attire. Arena or battlefield. Game-inspired aesthetic. Replace clothing and background only."),
			libraryStyle("adventure-hero", "Open-World Adventure Hero", "Adventure game hero style.",
				[]string{"adventure", "hero", "open world", "explorer"},
				"Transform into open-world adventure hero portrait. Explorer attire. Dramatic landscape. Adventure game aesthetic. Replace clothing and background only."),
			libraryStyle("lore-hero", "Lore-Driven Hero Portrait", "Story-driven hero style.",
				[]string{"lore", "hero", "story", "fantasy"},
				"Transform into lore-driven hero portrait. Fantasy hero attire. Rich narrative aesthetic. Epic fantasy world. Replace clothing and background only."),
		},
	},
	{
		ID:    "sci-fi",
		Title: "Science Fiction",
		Styles: []StylePreset{
			libraryStyle("futuristic-sci-fi", "Futuristic Sci-Fi Portrait", "Future sci-fi style.",
				[]string{"sci-fi", "futuristic", "future", "space"},
				"Transform into futuristic sci-fi portrait. Sleek future attire. Space or tech background. Sci-fi aesthetic. Replace clothing and background only."),
			libraryStyle("cyberpunk-neon", "Cyberpunk Neon City", "Neon cyberpunk style.",
				[]string{"cyberpunk", "neon", "city", "futuristic"},
				"Transform into cyberpunk neon city portrait. Neon lighting, tech accessories. Urban sci-fi. Blade Runner aesthetic. Replace clothing and background only."),
			libraryStyle("space-opera", "Space Opera Epic", "Grand space opera style.",
				[]string{"space opera", "space", "epic", "galactic"},
				"Transform into space opera epic portrait. Galactic attire. Stars, spacecraft. Epic sci-fi. Replace clothing and background only."),
			libraryStyle("starship-commander", "Starship Commander", "Space fleet commander style.",
				[]string{"starship", "commander", "space", "military"},
				"Transform into starship commander portrait. Military space attire. Bridge or starship. Sci-fi command aesthetic. Replace clothing and background only."),
			libraryStyle("interstellar-explorer", "Interstellar Explorer", "Space explorer style.",
				[]string{"interstellar", "explorer", "space", "adventure"},
				"Transform into interstellar explorer portrait. Explorer space suit. Alien world or spacecraft. Sci-fi adventure. Replace clothing and background only."),
		},
	},
	{
		ID:    "movie-poster",
		Title: "Movie Poster & Cinematic",
		Styles: []StylePreset{
			libraryStyle("classic-hollywood-poster", "Classic Hollywood Poster", "Golden age cinema poster.",
				[]string{"hollywood", "poster", "classic", "cinema"},
				"Transform into classic Hollywood poster portrait. Golden age cinema. Bold poster art. Film star quality. Replace clothing and background only."),
			libraryStyle("epic-blockbuster-poster", "Epic Blockbuster Poster", "Dramatic blockbuster style.",
				[]string{"blockbuster", "epic", "poster", "dramatic"},
				"Transform into epic blockbuster poster portrait. Dramatic lighting. Bold composition. Film poster aesthetic. Replace clothing and background only."),
			libraryStyle("noir-cinema", "Noir Cinema", "Film noir style.",
				[]string{"noir", "cinema", "film", "moody"},
				"Transform into noir cinema portrait. Black and white. Moody shadows. 1940s film noir. Replace clothing and background only."),
			libraryStyle("golden-age-cinema", "Golden Age Cinema", "Classic Hollywood glamour.",
				[]string{"golden age", "cinema", "hollywood", "glamour"},
				"Transform into golden age cinema portrait. Classic Hollywood glamour. Soft lighting. Film star quality. Replace clothing and background only."),
			libraryStyle("dramatic-key-art", "Dramatic Key Art", "Cinematic key art style.",
				[]string{"dramatic", "key art", "cinematic", "poster"},
				"Transform into dramatic key art portrait. Cinematic composition. Bold lighting. Film poster aesthetic. Replace clothing and background only."),
		},
	},
	{
		ID:    "photography-modern",
		Title: "Photography & Modern",
		Styles: []StylePreset{
			libraryStyle("professional-studio", "Professional Studio Portrait", "Studio portrait lighting.",
				[]string{"professional", "studio", "portrait", "lighting"},
				"Transform into professional studio portrait. Clean studio lighting. High-end retouch. Magazine quality. Replace background only, keep face virtually identical."),
			libraryStyle("cinematic-photography", "Cinematic Photography", "Film-like photography.",
				[]string{"cinematic", "photography", "film", "dramatic"},
				"Transform into cinematic photography portrait. Film-like color grading. Dramatic lighting. Movie still quality. Replace background only."),
			libraryStyle("editorial-magazine", "Editorial Magazine Cover", "Magazine cover style.",
				[]string{"editorial", "magazine", "cover", "vogue"},
				"Transform into editorial magazine cover portrait. Fashion editorial lighting. Clean, high-fashion. Magazine cover aesthetic. Replace background only."),
			libraryStyle("black-white-film", "Black & White Film Photography", "Classic B&W film look.",
				[]string{"black white", "film", "photography", "bw"},
				"Transform into black and white film photography portrait. Classic film grain. Timeless B&W. Replace background only."),
			libraryStyle("golden-hour-portrait", "Golden Hour Portrait", "Warm golden hour light.",
				[]string{"golden hour", "portrait", "warm", "sunset"},
				"Transform into golden hour portrait. Warm sunset lighting. Soft, flattering. Natural light aesthetic. Replace background only."),
		},
	},
	{
		ID:    "vintage-retro",
		Title: "Vintage & Retro",
		Styles: []StylePreset{
			libraryStyle("1920s-art-deco", "1920s Art Deco", "Roaring twenties style.",
				[]string{"1920s", "art deco", "roaring twenties", "jazz age"},
				"Transform into 1920s Art Deco portrait. Flapper era. Geometric patterns. Jazz age glamour. Replace clothing and background only."),
			libraryStyle("1940s-film-noir", "1940s Film Noir", "Classic film noir era.",
				[]string{"1940s", "film noir", "noir", "classic"},
				"Transform into 1940s film noir portrait. Moody shadows. Black and white. Classic noir aesthetic. Replace clothing and background only."),
			libraryStyle("1950s-classic", "1950s Classic Portrait", "Mid-century classic style.",
				[]string{"1950s", "classic", "mid century", "vintage"},
				"Transform into 1950s classic portrait. Mid-century style. Clean, elegant. Vintage glamour. Replace clothing and background only."),
			libraryStyle("sepia-toned", "Sepia Toned Portrait", "Vintage sepia tones.",
				[]string{"sepia", "toned", "vintage", "antique"},
				"Transform into sepia toned portrait. Vintage antique aesthetic. Warm brown tones. Old photograph feel. Replace background only."),
		},
	},
	{
		ID:    "illustration-digital",
		Title: "Illustration & Digital Art",
		Styles: []StylePreset{
			libraryStyle("pencil-illustration", "Pencil Illustration", "Hand-drawn pencil style.",
				[]string{"pencil", "illustration", "sketch", "hand drawn"},
				"Transform into pencil illustration portrait. Hand-drawn sketch style. Graphite texture. Artistic illustration. Replace clothing and background only."),
			libraryStyle("ink-drawing", "Ink Drawing", "Bold ink line art.",
				[]string{"ink", "drawing", "line art", "bold"},
				"Transform into ink drawing portrait. Bold line art. Pen and ink style. Graphic illustration. Replace clothing and background only."),
			libraryStyle("charcoal-portrait", "Charcoal Portrait", "Expressive charcoal art.",
				[]string{"charcoal", "portrait", "expressive", "artistic"},
				"Transform into charcoal portrait. Expressive charcoal technique. Dramatic shading. Fine art aesthetic. Replace clothing and background only."),
			libraryStyle("digital-painting", "Digital Painting", "Painterly digital art.",
				[]string{"digital", "painting", "painterly", "art"},
				"Transform into digital painting portrait. Painterly digital art. Rich colors. Concept art quality. Replace clothing and background only."),
			libraryStyle("graphic-novel-style", "Graphic Novel Style", "Graphic novel illustration.",
				[]string{"graphic novel", "illustration", "comic", "bold"},
				"Transform into graphic novel style portrait. Bold illustration. Comic art aesthetic. Dynamic composition. Replace clothing and background only."),
		},
	},
	{
		ID:    "cartoon-stylized",
		Title: "Cartoon & Stylized",
		Styles: []StylePreset{
			libraryStyle("3d-animated-family", "3D Animated Family Style", "Family-friendly 3D animated look.",
				[]string{"3d", "animated", "family", "pixar"},
				"Transform into 3D animated family style portrait. Clean, friendly 3D animation. Warm, approachable. Family-friendly aesthetic. Replace clothing and background only."),
			libraryStyle("anime-inspired", "Anime-Inspired Portrait", "Japanese anime style.",
				[]string{"anime", "japanese", "manga", "stylized"},
				"Transform into anime-inspired portrait. Japanese anime aesthetic. Expressive, stylized. High-quality illustration. Replace clothing and background only."),
			libraryStyle("manga-illustration", "Manga Illustration", "Manga comic style.",
				[]string{"manga", "illustration", "japanese", "comic"},
				"Transform into manga illustration portrait. Manga comic style. Clean lines. Japanese aesthetic. Replace clothing and background only."),
			libraryStyle("storybook-cartoon", "Storybook Cartoon", "Gentle cartoon illustration.",
				[]string{"storybook", "cartoon", "gentle", "children"},
				"Transform into storybook cartoon portrait. Gentle cartoon style. Warm, friendly. Children's book aesthetic. Replace clothing and background only."),
		},
	},
	{
		ID:    "pet-specific",
		Title: "Pet-Specific Styles",
		Styles: []StylePreset{
			libraryStyle("royal-pet-portrait", "Royal Pet Portrait", "Regal pet as nobility.",
				[]string{"royal", "pet", "noble", "regal"},
				"Transform pet into royal portrait. Regal attire. Velvet cushions. Crown or jewels. Keep pet face completely recognizable. Replace clothing and background only."),
			libraryStyle("knight-warrior-pet", "Knight / Warrior Pet", "Pet as noble knight.",
				[]string{"knight", "warrior", "pet", "armor"},
				"Transform pet into knight/warrior portrait. Miniature armor. Heroic pose. Medieval setting. Keep pet face completely recognizable. Replace clothing and background only."),
			libraryStyle("fantasy-familiar", "Fantasy Familiar", "Pet as magical familiar.",
				[]string{"fantasy", "familiar", "pet", "magical"},
				"Transform pet into fantasy familiar portrait. Magical companion. Fantasy setting. Mystical elements. Keep pet face completely recognizable. Replace clothing and background only."),
			libraryStyle("storybook-animal", "Storybook Animal", "Pet as storybook character.",
				[]string{"storybook", "animal", "pet", "whimsical"},
				"Transform pet into storybook animal portrait. Whimsical illustration. Children's book style. Keep pet face completely recognizable. Replace clothing and background only."),
			libraryStyle("medieval-bestiary", "Medieval Bestiary Style", "Pet in medieval bestiary style.",
				[]string{"medieval", "bestiary", "pet", "illuminated"},
				"Transform pet into medieval bestiary portrait. Illuminated manuscript style. Medieval decorative. Keep pet face completely recognizable. Replace clothing and background only."),
		},
	},
	{
		ID:    "mood-based",
		Title: "Mood-Based Styles",
		Styles: []StylePreset{
			libraryStyle("dramatic-moody", "Dramatic & Moody", "Dark, dramatic atmosphere.",
				[]string{"dramatic", "moody", "dark", "atmospheric"},
				"Transform into dramatic moody portrait. Dark atmosphere. Strong shadows. Emotional depth. Replace background only."),
			libraryStyle("light-airy", "Light & Airy", "Soft, breezy feel.",
				[]string{"light", "airy", "soft", "bright"},
				"Transform into light airy portrait. Soft lighting. Bright, fresh. Minimal shadows. Replace background only."),
			libraryStyle("warm-romantic", "Warm & Romantic", "Romantic, warm tones.",
				[]string{"warm", "romantic", "soft", "loving"},
				"Transform into warm romantic portrait. Soft warm tones. Romantic atmosphere. Flattering light. Replace background only."),
			libraryStyle("epic-grand", "Epic & Grand", "Grand, monumental feel.",
				[]string{"epic", "grand", "monumental", "dramatic"},
				"Transform into epic grand portrait. Monumental composition. Dramatic scale. Heroic atmosphere. Replace background only."),
			libraryStyle("calm-minimal", "Calm & Minimal", "Clean, minimal aesthetic.",
				[]string{"calm", "minimal", "clean", "simple"},
				"Transform into calm minimal portrait. Clean composition. Simple background. Peaceful aesthetic. Replace background only."),
			libraryStyle("powerful-heroic", "Powerful & Heroic", "Strong, heroic presence.",
				[]string{"powerful", "heroic", "strong", "bold"},
				"Transform into powerful heroic portrait. Strong presence. Heroic pose. Bold lighting. Replace background only."),
			libraryStyle("dreamlike-ethereal", "Dreamlike & Ethereal", "Soft, dreamy atmosphere.",
				[]string{"dreamlike", "ethereal", "dreamy", "soft"},
				"Transform into dreamlike ethereal portrait. Soft, dreamy. Mystical atmosphere. Replace background only."),
		},
	},
}

// StyleLibrary - 전체 그룹을 평탄화한 검색/조회용 라이브러리
// 중복 ID는 먼저 등장한 그룹의 정의가 우선 (first occurrence wins)
var StyleLibrary = buildLibrary()

var styleLibraryByID = func() map[string]*StylePreset {
	m := make(map[string]*StylePreset, len(StyleLibrary))
	for i := range StyleLibrary {
		m[StyleLibrary[i].ID] = &StyleLibrary[i]
	}
	return m
}()

func buildLibrary() []StylePreset {
	seen := map[string]bool{}
	var result []StylePreset
	for _, group := range StyleGroups {
		for _, style := range group.Styles {
			if seen[style.ID] {
				continue
			}
			seen[style.ID] = true
			result = append(result, style)
		}
	}
	return result
}

// StyleFromLibrary - 라이브러리에서 ID로 스타일 조회 (없으면 nil)
func StyleFromLibrary(styleID string) *StylePreset {
	return styleLibraryByID[styleID]
}

// AllStyleIDs - 라이브러리 전체 스타일 ID 목록 (예시 생성 스크립트용)
func AllStyleIDs() []string {
	ids := make([]string, 0, len(StyleLibrary))
	for _, s := range StyleLibrary {
		ids = append(ids, s.ID)
	}
	return ids
}

// Search - 라이브러리 자유 검색
// 2글자 미만 쿼리는 빈 결과 (에러 아님), 제목/설명/키워드/하위 스타일 제목 대상 부분 일치
func Search(query string) []StylePreset {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 2 {
		return nil
	}

	var matches []StylePreset
	for _, style := range StyleLibrary {
		fields := []string{style.Title, style.Description}
		fields = append(fields, style.SearchKeywords...)
		for _, sub := range style.SubStyles {
			fields = append(fields, sub.Title)
		}
		searchable := strings.ToLower(strings.Join(fields, " "))
		if strings.Contains(searchable, q) {
			matches = append(matches, style)
		}
	}
	return matches
}
