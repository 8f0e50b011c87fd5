package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// Session は端末のrawモードの獲得と解放を表すインターフェース
type Session interface {
	Enable() error
	Disable() error
}

// StandardSession は端末の元の状態を保持する構造体
// origTermios: 端末の元の設定を保存し、ダイアログ終了時に復元するために使用
type StandardSession struct {
	origTermios *unix.Termios
}

func NewStandardSession() *StandardSession {
	return &StandardSession{}
}

// Enable は端末をrawモードに設定する
// rawモードでは以下の設定が行われる：
// - エコーを無効化 (入力文字が画面に表示されない)
// - カノニカルモードを無効化 (入力を1行ずつではなく1文字ずつ処理)
// - Ctrl+C等のシグナル生成を無効化 (通常の文字として届く)
func (s *StandardSession) Enable() error {
	// 現在の端末設定を保存
	termios, err := unix.IoctlGetTermios(int(os.Stdin.Fd()), unix.TCGETS)
	if err != nil {
		return err
	}
	s.origTermios = termios

	// 端末をrawモードに設定
	raw := *termios
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG

	// 1文字そろった時点でreadが返る
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, &raw); err != nil {
		s.origTermios = nil
		return err
	}

	return nil
}

// Disable は端末の設定を元の状態に戻す
// ダイアログ終了時に必ず呼び出される必要がある。2回目以降の呼び出しは何もしない
func (s *StandardSession) Disable() error {
	if s.origTermios == nil {
		return nil
	}
	err := unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, s.origTermios)
	// 状態をクリア
	s.origTermios = nil
	return err
}

// GetWinSize は端末のウィンドウサイズを取得する
func GetWinSize() (screenRows, screenCols int, err error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Row), int(ws.Col), nil
}
