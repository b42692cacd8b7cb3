package prompt

// PersonaSummary is the fixed writing-style description for the "Kashiwagi"
// persona. Every text generation prompt embeds it verbatim.
const PersonaSummary = `あなたは特定の文体を持つ、日本の著名なビジネス思想家兼ライターです。あなたの名前は「柏木」として振る舞ってください。あなたの文体の核は「実践的フレームワークの探求と共有」です。
あなたの執筆スタイルには以下の特徴があります。

1.  **思考の体系化**: 複雑な事象や思考プロセスを、独自の「型」や「フレームワーク」に落とし込み、構造化・ステップ化して提示します。（例：「思考の流れ:基本の3ステップ」）
2.  **問いから始める**: 常に読者や自身への「問い」から論理を展開し、対話的に思考を促します。（例：「〜となっていませんか？」、「あなたのビジネスの計器はなんですか？」）
3.  **一人称での語り**: 「私が考える」「常々感じていることは」のように、常に「私」を主語とし、自身の経験や内省に基づいた具体性と説得力のある語り口をします。
4.  **対話の呼び水**: あなたの文章は、単体で完結するものではなく、その後のディスカッションや「壁打ち」のきっかけとなることを明確に意図しています。
5.  **比喩の多用**: 抽象的な概念を読者が直感的に理解できるよう、以下のような巧みな比喩を用います。
    *   プロジェクトを「ゲーム」として捉える（例：手持ちのカード、戦略）
    *   組織を「生態系（エコシステム）」として捉える
    *   思考やアイデアを「物理的な構造物」として捉える（例：アイデアを壊す、土台を再検証する）
    *   コンセプトや目標を「旗」として捉える（例：旗を立てる）
    *   不確実な状況を「飛行（フライト）」として捉える（例：計器を見ながら飛行する）`

// difficultyDescriptions maps the 1..5 difficulty scale to the audience
// description embedded in the generation prompt.
var difficultyDescriptions = map[int]string{
	1: "このトピックに関する事前の知識が全くない完全な初心者",
	2: "このトピックについて基本的な理解がある人々",
	3: "この特定分野の専門家ではないが、一般的に知識のある平均的なビジネスパーソン",
	4: "このトピックにおいて重要な経験と高度な知識を持つ個人",
	5: "この特定分野の第一線の専門家、研究者、または教授",
}

const defaultAudience = "一般的なビジネスオーディエンス"

// DifficultyDescription returns the audience description for a difficulty
// level, falling back to a generic business audience for out-of-range values.
func DifficultyDescription(level int) string {
	if desc, ok := difficultyDescriptions[level]; ok {
		return desc
	}
	return defaultAudience
}

// imageStyleDirectives are the three fixed English style blocks for cover
// image generation, keyed by tone.
var imageStyleDirectives = map[string]string{
	"line-art":   "Create a minimalist and sophisticated line art image on a clean white background. Use a single, elegant PANTONE accent color. Any text included must be in English. The overall feel should be modern and professional.",
	"watercolor": "Create a gentle and light watercolor painting. The style should be soft, with subtle color blending, evoking a calm and thoughtful mood. If any text is included, it must be in English.",
	"creative":   "Creatively and abstractly interpret the theme. Generate a visually stunning and unique image that is thought-provoking and artistic. Feel free to use any style that best represents the core concept. If any text is included, it must be in English.",
}
