// Package prompt compiles user parameters into provider-ready instruction
// text. Compilation is pure: no network, no clock, no randomness.
package prompt

import (
	"fmt"
	"strings"

	"github.com/alkime/postcraft/internal/post"
)

// Prompt is the compiled instruction pair sent to the text provider.
type Prompt struct {
	System string
	User   string
}

// Generate compiles a batch generation request. The returned prompt embeds
// the persona, the exact character bounds, the difficulty audience, the
// optional direction block, and the fixed post rules (3-5 hashtags, no emoji,
// mobile line breaks, exactly 5 variants).
func Generate(req post.GenerationRequest) Prompt {
	var sb strings.Builder
	sb.WriteString(PersonaSummary)
	sb.WriteString("\n\n上記のペルソナと文体を厳格に守り、日本のビジネスオーディエンス（20代から50代）からのエンゲージメント（いいね、リポスト、コメント）を最大化する、X（旧Twitter）向けの魅力的な投稿を5つ作成してください。\n\n")

	if direction := strings.TrimSpace(req.Direction); direction != "" {
		fmt.Fprintf(&sb, "さらに、以下の方向性や指示を考慮して投稿を作成してください：\n「%s」\n\n", direction)
	}

	sb.WriteString("あなたのトーンは洞察に富み、プロフェッショナルでありながら、堅苦しすぎず親しみやすいものであるべきです。コンテンツは共感を呼ぶか、示唆に富むもので、人々に理解されたと感じさせたり、何か新しいことを学んだりさせるものでなければなりません。\n\n")
	sb.WriteString("各投稿について、以下のルールを厳守してください：\n")
	fmt.Fprintf(&sb, "1.  投稿の文字数は、厳密に%d文字から%d文字の間でなければなりません。\n", req.MinLength, req.MaxLength)
	fmt.Fprintf(&sb, "2.  コンテンツの難易度と専門用語は、次のオーディエンスに合わせて調整してください：%s。\n", DifficultyDescription(req.Difficulty))
	sb.WriteString("3.  関連性が高く人気のある日本のハッシュタグを3〜5個、投稿の文中または末尾に含めてください。\n")
	sb.WriteString("4.  モバイルデバイスで読みやすいように、改行を入れて投稿を適切に構成してください。\n")
	sb.WriteString("5.  絵文字は一切使用しないでください。\n\n")
	sb.WriteString("ユーザーのテーマに基づいて、厳密に5つの異なる投稿バリエーションを生成してください。")

	return Prompt{
		System: sb.String(),
		User:   fmt.Sprintf("テーマ: %q", req.Topic),
	}
}

// Adjust compiles a revision request for an existing post. The original post
// and intent are embedded verbatim; one instruction line is appended per
// active adjustment axis.
func Adjust(original post.Post, req post.AdjustmentRequest) Prompt {
	var instr strings.Builder
	instr.WriteString("以下の指示に従って、投稿を修正してください。\n")
	if req.Length == post.LengthShorter {
		instr.WriteString("- 投稿をより簡潔に、短くしてください。\n")
	}
	if req.Length == post.LengthLonger {
		instr.WriteString("- 投稿をより詳細に、長くしてください。\n")
	}
	if req.Difficulty == post.DifficultySimpler {
		instr.WriteString("- 専門用語を減らし、より平易な言葉で説明してください。\n")
	}
	if req.Difficulty == post.DifficultyMoreExpert {
		instr.WriteString("- より専門的な洞察や専門用語を取り入れてください。\n")
	}
	if extra := strings.TrimSpace(req.Instruction); extra != "" {
		fmt.Fprintf(&instr, "- 追加の指示： %s\n", extra)
	}

	var sb strings.Builder
	sb.WriteString(PersonaSummary)
	sb.WriteString("\n\nあなたは上記のペルソナと文体を厳格に守り、既存のX（旧Twitter）投稿を修正するタスクを担っています。\n\n")
	fmt.Fprintf(&sb, "元の投稿：\n「%s」\n\n", original.Post)
	fmt.Fprintf(&sb, "元の投稿の意図：\n「%s」\n\n", original.Intent)
	sb.WriteString(instr.String())
	sb.WriteString("\n修正後の投稿と、新しい意図を生成してください。\n絵文字は一切使用しないでください。")

	return Prompt{
		System: sb.String(),
		User:   "投稿を修正してください。",
	}
}

// Image compiles a cover image prompt. The source text inspires the image but
// must not be reproduced in it; the target is a 1280x670 widescreen cover.
func Image(req post.ImageRequest) string {
	style := imageStyleDirectives[string(req.Tone)]

	var sb strings.Builder
	sb.WriteString("Generate a cover image for a Japanese 'note' article (1280x670px). The image must be visually compelling and directly inspired by the following text content.\n\n")
	fmt.Fprintf(&sb, "**Image Style:** %s\n\n", style)
	fmt.Fprintf(&sb, "**Text Content to Inspire Image:**\n%q\n\n", req.SourceText)
	sb.WriteString("Do not include any of the original Japanese text from the 'Text Content to Inspire Image' in the image. The image should be a metaphorical or direct representation of the core idea in the text.")
	return sb.String()
}

// Structure compiles a diagram generation prompt. The provider is asked for
// raw Mermaid markup only; the detail level is a granularity hint.
func Structure(req post.StructureRequest) Prompt {
	diagramName := "フローチャート（flowchart TD）"
	if req.DiagramType == post.DiagramSequence {
		diagramName = "シーケンス図（sequenceDiagram）"
	}

	var sb strings.Builder
	sb.WriteString("あなたは文章の論理構造を図解する専門家です。与えられた投稿を要約する構造図をMermaid記法で作成してください。\n\n")
	fmt.Fprintf(&sb, "図の種類: %s\n", diagramName)
	fmt.Fprintf(&sb, "詳細度: 5段階中%d（1は最も簡潔、5は最も詳細）\n\n", req.DetailLevel)
	sb.WriteString("出力はMermaid記法のソースコードのみとし、説明文やコードフェンスは含めないでください。ノードのラベルは日本語で簡潔に記述してください。")

	return Prompt{
		System: sb.String(),
		User:   fmt.Sprintf("対象の投稿：\n%s", req.SourceText),
	}
}
