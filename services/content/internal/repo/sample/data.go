package sample

import (
	"time"

	"platina/services/content/internal/entity"
)

func date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

var (
	lucas = entity.Author{
		ID:        "author-lucas-silva",
		Name:      "Lucas Silva",
		Avatar:    "https://i.pravatar.cc/150?img=12",
		PsnID:     "PlatinaCaçador",
		Instagram: "@platina_hunter",
		Twitter:   "@platina_hunter",
		Bio:       "Caçador de troféus desde 2010. Especialista em RPGs e jogos de ação.",
		Role:      entity.AuthorRoleAuthor,
	}
	marina = entity.Author{
		ID:        "author-marina-costa",
		Name:      "Marina Costa",
		Avatar:    "https://i.pravatar.cc/150?img=5",
		PsnID:     "SoulsMaster",
		Instagram: "@souls_hunter",
		Twitter:   "@souls_hunter",
		Bio:       "Especialista em jogos FromSoftware. Já platinou todos os Souls, Bloodborne e Sekiro.",
		Role:      entity.AuthorRoleAuthor,
	}
	pedro = entity.Author{
		ID:        "author-pedro-almeida",
		Name:      "Pedro Almeida",
		Avatar:    "https://i.pravatar.cc/150?img=8",
		PsnID:     "TrophyMaster_BR",
		Instagram: "@trophy_master",
		Twitter:   "@trophy_master_br",
		Bio:       "Jogador hardcore com mais de 200 platinas. Especialista em jogos de mundo aberto e FPS.",
		Role:      entity.AuthorRoleAuthor,
	}
	ana = entity.Author{
		ID:        "author-ana-beatriz-mendes",
		Name:      "Ana Beatriz Mendes",
		Avatar:    "https://i.pravatar.cc/150?img=23",
		PsnID:     "AnaBeatrizGamer",
		Instagram: "@anabeatriz_games",
		Twitter:   "@anabeatriz_games",
		Bio:       "Jornalista especializada em games há 8 anos. Cobre principalmente notícias sobre PlayStation e Nintendo.",
		Role:      entity.AuthorRoleAuthor,
	}
	rafael = entity.Author{
		ID:        "author-rafael-oliveira",
		Name:      "Rafael Oliveira",
		Avatar:    "https://i.pravatar.cc/150?img=33",
		PsnID:     "RafaelGamer_BR",
		Instagram: "@rafael_indie_games",
		Twitter:   "@rafael_games",
		Bio:       "Especialista em jogos indie e metroidvanias. Completou Hollow Knight com 112% três vezes.",
		Role:      entity.AuthorRoleAuthor,
	}
)

var authors = []entity.Author{lucas, marina, pedro, ana, rafael}

func post(id, title, slug, content, image string, kind entity.PostType, at time.Time, author entity.Author) entity.Post {
	a := author
	return entity.Post{
		ID:        id,
		Title:     title,
		Slug:      slug,
		Content:   content,
		Image:     image,
		Type:      kind,
		CreatedAt: at,
		UpdatedAt: at,
		Author:    &a,
		AuthorID:  &a.ID,
	}
}

var reviews = []entity.Review{
	{
		Post: post("1",
			"Uma obra-prima que redefine o gênero",
			"the-last-of-us-part-2",
			"The Last of Us Part II é uma obra-prima que eleva o nível de narrativa nos videogames. "+
				"Naughty Dog conseguiu criar uma sequência que não apenas honra o original, mas o supera em vários aspectos.\n\n"+
				"A trilha sonora, composta por Gustavo Santaolalla, complementa perfeitamente a atmosfera do jogo, "+
				"intensificando os momentos emocionais e de tensão.",
			"https://assets.reedpopcdn.com/the-last-of-us-part-2-walkthrough-guide-8001-1592495034582.jpg/BROK/thumbnail/1600x900/format/jpg/quality/80/the-last-of-us-part-2-walkthrough-guide-8001-1592495034582.jpg",
			entity.PostTypeReview, date(2023, time.June, 19, 14, 23), lucas),
		Rating:   entity.RatingPlatinum,
		GameName: "The Last of Us Part II",
		Genres:   []string{"Ação", "Aventura", "Survival Horror"},
		Tags:     []string{"PS4", "PS5", "Naughty Dog", "Exclusivo Sony"},
		PlatinaGuide: &entity.PlatinaGuide{
			Difficulty: 5,
			TimeToPlat: "25-35h",
			Tips: "Jogue primeiro no modo normal para a experiência completa. Depois use o modo fácil com os " +
				"coletáveis marcados para a segunda run. Não há troféus relacionados à dificuldade.",
		},
		AdditionalImages: []entity.AdditionalImage{
			{URL: "https://cdn.mos.cms.futurecdn.net/2sFGpJFdPHfNKUokiTKtPk.jpg", Caption: "Os cenários de Seattle são incrivelmente detalhados e atmosféricos.", DisplayOrder: 0},
			{URL: "https://www.psu.com/wp/wp-content/uploads/2020/06/the-last-of-us-2-review-ps4-4-1024x576.jpg", Caption: "A relação entre os personagens é o ponto forte da narrativa.", DisplayOrder: 1},
		},
	},
	{
		Post: post("2",
			"Um RPG de mundo aberto que impressiona",
			"elden-ring",
			"Elden Ring representa a evolução natural da fórmula Souls que a FromSoftware vem aperfeiçoando ao longo dos anos.\n\n"+
				"Elden Ring não é apenas um dos melhores jogos da FromSoftware, mas um dos melhores RPGs de todos os tempos. "+
				"É um mundo vasto e misterioso que recompensa a exploração e a perseverança.",
			"https://image.api.playstation.com/vulcan/ap/rnd/202108/0410/8ifJaZQQNNi7R7qREi1QlRqD.jpg",
			entity.PostTypeReview, date(2023, time.February, 25, 10, 15), marina),
		Rating:   entity.RatingPlatinum,
		GameName: "Elden Ring",
		Genres:   []string{"RPG", "Ação", "Mundo Aberto"},
		Tags:     []string{"PS5", "Xbox Series X/S", "PC", "FromSoftware"},
		PlatinaGuide: &entity.PlatinaGuide{
			Difficulty:       7,
			TimeToPlat:       "80-100h",
			MissableTrophies: true,
			Tips: "Você precisará de pelo menos 3 runs para todos os finais. Use save scumming para economizar tempo. " +
				"Alguns troféus são missáveis, então use um guia para os finais e armas lendárias.",
		},
		AdditionalImages: []entity.AdditionalImage{
			{URL: "https://cdn.mos.cms.futurecdn.net/hiGdSt6kHxYbpEwCXTYxBE.jpg", Caption: "O mundo aberto de Elden Ring é vasto e repleto de segredos para descobrir.", DisplayOrder: 0},
			{URL: "https://www.pcgamesn.com/wp-content/sites/pcgamesn/2022/02/elden-ring-map-size.jpg", Caption: "O mapa é enorme e diversificado, com biomas distintos para explorar.", DisplayOrder: 1},
		},
	},
	{
		Post: post("3",
			"Um bom jogo, mas que não atinge seu potencial",
			"cyberpunk-2077",
			"Cyberpunk 2077 é um jogo que carrega o peso de suas próprias ambições.\n\n"+
				"Night City é, sem dúvida, o ponto alto do jogo. No entanto, o jogo sofre com problemas técnicos "+
				"que vão desde bugs menores até falhas que podem interromper o progresso.",
			"https://image.api.playstation.com/vulcan/ap/rnd/202111/3013/cKz4tKNFj9C7RvtMaFdZP5Mi.jpg",
			entity.PostTypeReview, date(2022, time.December, 10, 16, 45), lucas),
		Rating:   entity.RatingGold,
		GameName: "Cyberpunk 2077",
		Genres:   []string{"RPG", "Ação", "Mundo Aberto"},
		Tags:     []string{"PS5", "Xbox Series X/S", "PC", "CD Projekt RED"},
		PlatinaGuide: &entity.PlatinaGuide{
			Difficulty:       5,
			TimeToPlat:       "60-80h",
			MissableTrophies: true,
			Tips: "Salve frequentemente antes de missões importantes. Alguns troféus são relacionados a finais " +
				"específicos e decisões na história.",
		},
		AdditionalImages: []entity.AdditionalImage{
			{URL: "https://cdn.mos.cms.futurecdn.net/YdoiAKKdVhYBtK8AhKgWFY.jpg", Caption: "Night City é impressionantemente detalhada e vibrante.", DisplayOrder: 0},
		},
	},
	{
		Post: post("4",
			"Um jogo mediano que não inova",
			"saints-row-2022",
			"O reboot de Saints Row tenta recapturar a magia da série original, mas acaba se perdendo no processo.\n\n"+
				"Saints Row não é um jogo ruim, mas é mediano em quase todos os aspectos.",
			"https://meups.com.br/wp-content/uploads/2022/08/Saints-Row-2022-900x503.jpg",
			entity.PostTypeReview, date(2022, time.August, 25, 9, 30), pedro),
		Rating:   entity.RatingSilver,
		GameName: "Saints Row (2022)",
		Genres:   []string{"Ação", "Aventura", "Mundo Aberto"},
		Tags:     []string{"PS5", "Xbox Series X/S", "PC", "Volition"},
		PlatinaGuide: &entity.PlatinaGuide{
			Difficulty: 3,
			TimeToPlat: "30-40h",
			Tips: "A maioria dos troféus é obtida naturalmente jogando a história e completando atividades secundárias.",
		},
		AdditionalImages: []entity.AdditionalImage{
			{URL: "https://cdn.mos.cms.futurecdn.net/pJAjCSRFPpNYtECkDQwpMS.jpg", Caption: "A cidade de Santo Ileso oferece cenários variados, mas carece de personalidade.", DisplayOrder: 0},
		},
	},
	{
		Post: post("5",
			"Uma decepção que desperdiça seu potencial",
			"battlefield-2042",
			"Battlefield 2042 representa um passo atrás para a franquia que já foi líder no gênero de FPS.\n\n"+
				"Battlefield 2042 tem momentos de diversão, especialmente quando os sistemas funcionam como deveriam.",
			"https://cdn.mos.cms.futurecdn.net/pEjZvBKQRPtZNyKWDFiGfg.jpg",
			entity.PostTypeReview, date(2021, time.November, 20, 11, 0), lucas),
		Rating:   entity.RatingBronze,
		GameName: "Battlefield 2042",
		Genres:   []string{"FPS", "Ação", "Multiplayer"},
		Tags:     []string{"PS5", "Xbox Series X/S", "PC", "EA", "DICE"},
		PlatinaGuide: &entity.PlatinaGuide{
			Difficulty:     9,
			TimeToPlat:     "100-150h",
			OnlineRequired: true,
			Tips: "Prepare-se para um grind intenso. Muitos troféus exigem progressão de nível e conquistas " +
				"específicas em modos multiplayer.",
		},
		AdditionalImages: []entity.AdditionalImage{
			{URL: "https://cdn.mos.cms.futurecdn.net/xFcjwzFGbJkiNJuq8vELs7.jpg", Caption: "Os mapas são visualmente impressionantes, mas sofrem com problemas de design.", DisplayOrder: 0},
		},
	},
}

var news = []entity.News{
	{
		Post: post("1",
			"GTA 6 tem primeiro trailer oficial revelado pela Rockstar Games",
			"gta-6-primeiro-trailer-oficial",
			"A Rockstar Games finalmente revelou o primeiro trailer oficial de Grand Theft Auto VI. "+
				"O vídeo confirma o retorno a Vice City.\n\n"+
				"A Rockstar confirmou que GTA 6 será lançado em 2025 para PlayStation 5 e Xbox Series X|S.",
			"https://sm.ign.com/ign_br/screenshot/default/gta-6-trailer-1-lucia-jason-beach_1y3p.jpg",
			entity.PostTypeNews, date(2023, time.December, 5, 18, 0), lucas),
		AdditionalMedia: []entity.NewsMedia{},
	},
	{
		Post: post("2",
			"PlayStation 5 Pro deve ser anunciado em breve, segundo rumores",
			"playstation-5-pro-anuncio-rumores",
			"Rumores cada vez mais fortes indicam que a Sony está se preparando para anunciar o PlayStation 5 Pro nos próximos meses.\n\n"+
				"A Sony não comentou oficialmente sobre esses rumores.",
			"https://files.tecnoblog.net/wp-content/uploads/2020/06/playstation-5-produto-700x700.png",
			entity.PostTypeNews, date(2024, time.March, 15, 14, 30), ana),
		AdditionalMedia: []entity.NewsMedia{},
	},
	{
		Post: post("3",
			"Nintendo anuncia sucessor do Switch para 2025",
			"nintendo-anuncia-sucessor-switch-2025",
			"A Nintendo finalmente quebrou o silêncio e anunciou oficialmente que está trabalhando no sucessor do Nintendo Switch.\n\n"+
				"O novo hardware manterá o conceito híbrido que fez do Switch um sucesso.",
			"https://sm.ign.com/ign_br/screenshot/default/nintendo-switch-2-rumor-2023-1_rvqz.jpg",
			entity.PostTypeNews, date(2024, time.February, 20, 9, 45), lucas),
		AdditionalMedia: []entity.NewsMedia{},
	},
	{
		Post: post("4",
			"Silksong finalmente ganha data de lançamento após anos de espera",
			"silksong-data-lancamento-anunciada",
			"Após anos de espera e especulações, a Team Cherry finalmente anunciou a data de lançamento de Hollow Knight: Silksong.\n\n"+
				"Silksong será lançado simultaneamente para PC, Nintendo Switch, PlayStation e Xbox.",
			"https://cdn.akamai.steamstatic.com/steam/apps/1030300/header.jpg",
			entity.PostTypeNews, date(2024, time.April, 1, 16, 20), rafael),
		AdditionalMedia: []entity.NewsMedia{},
	},
	{
		Post: post("5",
			"Microsoft anuncia novo Xbox Game Pass Ultimate+ com acesso a lançamentos no dia 1",
			"microsoft-xbox-game-pass-ultimate-plus",
			"A Microsoft anunciou hoje uma nova camada premium para seu serviço de assinatura: o Xbox Game Pass Ultimate+.\n\n"+
				"O Xbox Game Pass Ultimate+ estará disponível a partir de 1º de junho.",
			"https://sm.ign.com/ign_br/screenshot/default/xbox-game-pass-logo-1_xyj8.jpg",
			entity.PostTypeNews, date(2024, time.April, 15, 10, 0), lucas),
		AdditionalMedia: []entity.NewsMedia{},
	},
}

var guides = []entity.Guide{
	{
		Post: post("tlou2-guide",
			"Guia Completo de Platina",
			"the-last-of-us-part-2-guia-platina",
			"Este guia irá ajudá-lo a obter todos os troféus e conquistar a platina em The Last of Us Part II. "+
				"O jogo tem um total de 26 troféus (1 platina, 8 de ouro, 8 de prata e 9 de bronze).\n\n"+
				"Não há troféus missáveis, pois você pode usar o modo de seleção de capítulos.",
			"https://assets.reedpopcdn.com/the-last-of-us-part-2-walkthrough-guide-8001-1592495034582.jpg/BROK/thumbnail/1600x900/format/jpg/quality/80/the-last-of-us-part-2-walkthrough-guide-8001-1592495034582.jpg",
			entity.PostTypeGuide, date(2023, time.July, 15, 10, 0), lucas),
		GameName:      "The Last of Us Part II",
		Difficulty:    4,
		EstimatedTime: "30-40h",
		Tags:          []string{"PS4", "PS5", "Naughty Dog", "Exclusivo Sony", "Ação", "Aventura"},
		Steps: []entity.GuideStep{
			{
				Title:        "Troféu de Platina - Mestre Sobrevivente",
				Description:  "Colete todos os outros troféus para ganhar a platina.",
				Image:        "https://oyster.ignimgs.com/mediawiki/apis.ign.com/the-last-of-us-2/9/9c/Tlou2_plat.png",
				DisplayOrder: 0,
			},
			{
				Title:        "Troféu de Ouro - Que a Luz Guie Você",
				Description:  "Complete a história. A história principal leva aproximadamente 25-30 horas para ser concluída.",
				Image:        "https://oyster.ignimgs.com/mediawiki/apis.ign.com/the-last-of-us-2/a/a3/Tlou2_story.png",
				DisplayOrder: 1,
			},
			{
				Title:        "Troféu de Ouro - Tudo de Nós",
				Description:  "Colete todos os artefatos e registros. Existem 286 espalhados pelo jogo.",
				Image:        "https://oyster.ignimgs.com/mediawiki/apis.ign.com/the-last-of-us-2/c/c5/Tlou2_artifacts.png",
				Video:        "https://www.youtube.com/watch?v=vRaOxv-dSLs",
				DisplayOrder: 2,
			},
			{
				Title:        "Dicas Gerais para Platinar",
				Description:  "Jogue primeiro no modo normal para aproveitar a história. Depois use o modo de seleção de capítulos para coletar itens perdidos.",
				Image:        "https://cdn.mos.cms.futurecdn.net/2sFGpJFdPHfNKUokiTKtPk.jpg",
				DisplayOrder: 3,
			},
		},
	},
}

var articles = []entity.Article{
	{
		Post: post("article-historia-platina",
			"A história do troféu de Platina no PlayStation",
			"historia-do-trofeu-de-platina",
			"Os troféus chegaram ao PlayStation 3 em 2008 e mudaram a forma como jogamos.\n\n"+
				"Desde então a Platina virou o selo de quem completou tudo o que um jogo tem a oferecer.",
			"https://images.unsplash.com/photo-1606144042614-b2417e99c4e3",
			entity.PostTypeArticle, date(2024, time.March, 28, 12, 0), pedro),
		Subtitle: "De 2008 até hoje, como um ícone virou obsessão",
		Category: "Especial",
		ArticleMedia: []entity.NewsMedia{
			{Type: entity.MediaImage, URL: "https://images.unsplash.com/photo-1486572788966-cfd3df1f5b42", Caption: "O PlayStation 3, onde tudo começou", DisplayOrder: 0},
		},
	},
	{
		Post: post("article-jogos-dificeis",
			"As platinas mais difíceis da geração",
			"platinas-mais-dificeis-da-geracao",
			"Algumas platinas exigem mais do que paciência: pedem reflexos, planejamento e muitas horas.\n\n"+
				"Reunimos as que mais fizeram a nossa equipe sofrer no PS5.",
			"https://images.unsplash.com/photo-1552820728-8b83bb6b773f",
			entity.PostTypeArticle, date(2024, time.April, 10, 15, 30), marina),
		Subtitle:     "Ranking da equipe Platina",
		Category:     "Lista",
		ArticleMedia: []entity.NewsMedia{},
	},
}

var platinadorTips = []entity.PlatinadorTip{
	{
		Post: post("tip-backup-save",
			"Faça backup do save antes de troféus perdíveis",
			"backup-do-save-trofeus-perdiveis",
			"Antes de qualquer escolha que trave um troféu, copie o save para a nuvem ou um pendrive.\n\n"+
				"Assim você pode voltar e pegar o outro final sem repetir o jogo inteiro.",
			"https://images.unsplash.com/photo-1593305841991-05c297ba4575",
			entity.PostTypePlatinador, date(2024, time.February, 5, 10, 0), lucas),
		Category:        "Organização",
		HelpfulCount:    37,
		PlatinadorMedia: []entity.NewsMedia{},
	},
	{
		Post: post("tip-lista-de-trofeus",
			"Leia a lista de troféus antes de começar",
			"leia-a-lista-de-trofeus",
			"Conhecer a lista evita surpresas como colecionáveis em áreas sem retorno.\n\n"+
				"Marque os perdíveis e planeje a primeira jogada em volta deles.",
			"https://images.unsplash.com/photo-1612287230202-1ff1d85d1bdf",
			entity.PostTypePlatinador, date(2024, time.March, 2, 19, 15), rafael),
		Category:     "Planejamento",
		HelpfulCount: 58,
		PlatinadorMedia: []entity.NewsMedia{
			{Type: entity.MediaVideo, URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", Caption: "Como ler uma lista de troféus", DisplayOrder: 0},
		},
	},
}
