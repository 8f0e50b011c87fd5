package screen

import (
	"github.com/spartakraz/integer-input-dialog/app/boundary/writer"
)

const (
	// エスケープシーケンス
	escape             = "\x1b" // ESC
	clearSequence      = "[2J"  // 画面クリア
	clearLineSequence  = "[2K"  // 行全体をクリア
	cursorHomeSequence = "[H"   // カーソルを原点に移動
	bell               = "\a"   // ベル
)

// InputPrefix は入力行の先頭に表示される文字列
const InputPrefix = "? "

// Screen はダイアログの2行を描画する構造体
// 画面の状態は読み返さず、常に上書きで描画する
type Screen struct {
	rowLines    int
	colLines    int
	builder     *Builder
	writer      writer.ScreenWriter
	bellEnabled bool
}

func NewScreen(
	builder *Builder,
	writer writer.ScreenWriter,
	rows, cols int,
	bellEnabled bool,
) *Screen {
	return &Screen{
		rowLines:    rows,
		colLines:    cols,
		builder:     builder,
		writer:      writer,
		bellEnabled: bellEnabled,
	}
}

func (s *Screen) GetRowLines() int {
	return s.rowLines
}

func (s *Screen) GetColLines() int {
	return s.colLines
}

// ClearScreen は画面全体をクリアしてカーソルを原点に移動する
func (s *Screen) ClearScreen() error {
	s.builder.Clear()
	s.builder.Write(escape + clearSequence)
	s.builder.Write(escape + cursorHomeSequence)
	return s.writer.Write(s.builder.Build())
}

// DrawPrompt はプロンプト行と入力行の初期状態を描画する
// xとyは1始まりの画面座標。yの行にプロンプト、y+1の行に入力行が置かれる
func (s *Screen) DrawPrompt(x, y int, prompt string) error {
	s.builder.Clear()

	// プロンプト行は画面に残った文字を消してから描画する
	s.builder.Write(s.builder.MoveCursor(y, x))
	s.builder.Write(escape + clearLineSequence)
	s.builder.Write(s.truncatePrompt(prompt, x))

	// 入力行も同様にクリアしてから接頭辞を描画する
	s.builder.Write(s.builder.MoveCursor(y+1, x))
	s.builder.Write(escape + clearLineSequence)
	s.builder.Write(InputPrefix)

	return s.writer.Write(s.builder.Build())
}

// RedrawInput は入力行全体を現在の数字列で再描画する
// カーソルは常に数字列の直後に置かれる
func (s *Screen) RedrawInput(x, y int, digits string) error {
	s.builder.Clear()
	s.builder.Write(s.builder.MoveCursor(y+1, x))
	s.builder.Write(escape + clearLineSequence)
	s.builder.Write(InputPrefix)
	s.builder.Write(digits)
	s.builder.Write(s.builder.MoveCursor(y+1, x+len(InputPrefix)+len(digits)))
	return s.writer.Write(s.builder.Build())
}

// ShowCancelled は入力行をキャンセル通知で上書きする
func (s *Screen) ShowCancelled(x, y int, notice string) error {
	s.builder.Clear()
	s.builder.Write(s.builder.MoveCursor(y+1, x))
	s.builder.Write(escape + clearLineSequence)
	s.builder.Write(notice)
	return s.writer.Write(s.builder.Build())
}

// Alert は拒否されたキー入力をベルで通知する
// ベルが無効の場合は何もしない
func (s *Screen) Alert() error {
	if !s.bellEnabled {
		return nil
	}
	return s.writer.Write(bell)
}

// truncatePrompt は端末の幅に収まるようにプロンプトを切り詰める
// 全角文字は2桁分として数える
func (s *Screen) truncatePrompt(prompt string, x int) string {
	avail := s.colLines - x + 1
	if avail <= 0 {
		return ""
	}
	w := 0
	for i, ch := range prompt {
		cw := charWidth(ch)
		if w+cw > avail {
			return prompt[:i]
		}
		w += cw
	}
	return prompt
}
