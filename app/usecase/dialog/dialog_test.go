package dialog_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spartakraz/integer-input-dialog/app/boundary/provider/input"
	"github.com/spartakraz/integer-input-dialog/app/boundary/reader"
	"github.com/spartakraz/integer-input-dialog/app/boundary/writer"
	"github.com/spartakraz/integer-input-dialog/app/config"
	"github.com/spartakraz/integer-input-dialog/app/entity/core"
	"github.com/spartakraz/integer-input-dialog/app/entity/core/term"
	"github.com/spartakraz/integer-input-dialog/app/entity/screen"
	"github.com/spartakraz/integer-input-dialog/app/usecase/dialog"
	"github.com/spartakraz/integer-input-dialog/app/usecase/parser"
)

// テスト用のセットアップ
// chunksは1回の読み取りごとに返されるバイト列。使い切った後の読み取りはエラーになる
func setupDialog(t *testing.T, chunks []string) (*dialog.Dialog, *term.MockSession, *strings.Builder) {
	ctrl := gomock.NewController(t)

	// ロガーのスタブ設定
	mockLogger := core.NewMockLogger(ctrl)
	mockLogger.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Flush().AnyTimes()

	// 描画結果を文字列として蓄積する
	var out strings.Builder
	mockWriter := writer.NewMockScreenWriter(ctrl)
	mockWriter.EXPECT().Write(gomock.Any()).DoAndReturn(func(s string) error {
		out.WriteString(s)
		return nil
	}).AnyTimes()

	// キー入力のスクリプト
	mockReader := reader.NewMockKeyReader(ctrl)
	i := 0
	mockReader.EXPECT().Read().DoAndReturn(func() ([]byte, int, error) {
		if i >= len(chunks) {
			return nil, 0, fmt.Errorf("no input")
		}
		chunk := []byte(chunks[i])
		i++
		return chunk, len(chunk), nil
	}).AnyTimes()

	mockSession := term.NewMockSession(ctrl)

	scr := screen.NewScreen(screen.NewBuilder(), mockWriter, 25, 80, true)
	inputProvider := input.NewStandardInputProvider(mockReader, parser.NewStandardInputParser(mockLogger))
	conf := &config.Config{BellEnabled: true, CancelNotice: "Cancelled"}

	return dialog.New(scr, mockSession, inputProvider, mockLogger, conf), mockSession, &out
}

func TestDialog_ConfirmSimple(t *testing.T) {
	d, session, _ := setupDialog(t, []string{"1", "2", "3", "\n"})
	session.EXPECT().Enable().Return(nil).Times(1)
	session.EXPECT().Disable().Return(nil).Times(1)

	outcome, err := d.Show(1, 1, "Enter your number: ")
	if err != nil {
		t.Fatalf("Show returned error: %v", err)
	}
	if !outcome.Confirmed || outcome.Value != 123 {
		t.Errorf("outcome = %+v, want Confirmed(123)", outcome)
	}
}

func TestDialog_ConfirmTypeAhead(t *testing.T) {
	// 先行入力で全文字が1回の読み取りにまとまっても結果は同じ
	d, session, _ := setupDialog(t, []string{"123\n"})
	session.EXPECT().Enable().Return(nil).Times(1)
	session.EXPECT().Disable().Return(nil).Times(1)

	outcome, err := d.Show(1, 1, "Enter your number: ")
	if err != nil {
		t.Fatalf("Show returned error: %v", err)
	}
	if !outcome.Confirmed || outcome.Value != 123 {
		t.Errorf("outcome = %+v, want Confirmed(123)", outcome)
	}
}

func TestDialog_DeleteKey(t *testing.T) {
	d, session, out := setupDialog(t, []string{"1", "2", "d", "3", "\n"})
	session.EXPECT().Enable().Return(nil).Times(1)
	session.EXPECT().Disable().Return(nil).Times(1)

	outcome, err := d.Show(1, 1, "Enter your number: ")
	if err != nil {
		t.Fatalf("Show returned error: %v", err)
	}
	if !outcome.Confirmed || outcome.Value != 13 {
		t.Errorf("outcome = %+v, want Confirmed(13)", outcome)
	}
	if !strings.Contains(out.String(), "? 13") {
		t.Errorf("final redraw should show %q, output: %q", "? 13", out.String())
	}
}

func TestDialog_EmptyConfirmThenEscape(t *testing.T) {
	// 空のままの確定は無視され、続くESCでキャンセルされる
	d, session, out := setupDialog(t, []string{"\n", "\x1b"})
	session.EXPECT().Enable().Return(nil).Times(1)
	session.EXPECT().Disable().Return(nil).Times(1)

	outcome, err := d.Show(1, 1, "Enter your number: ")
	if err != nil {
		t.Fatalf("Show returned error: %v", err)
	}
	if outcome.Confirmed {
		t.Errorf("outcome = %+v, want Cancelled", outcome)
	}
	if !strings.Contains(out.String(), "\a") {
		t.Error("empty confirm should ring the bell")
	}
	if !strings.Contains(out.String(), "Cancelled") {
		t.Errorf("cancellation notice missing from output: %q", out.String())
	}
}

func TestDialog_EscapeDiscardsInput(t *testing.T) {
	// 入力済みの数字はキャンセルで破棄される
	d, session, _ := setupDialog(t, []string{"9", "9", "\x1b"})
	session.EXPECT().Enable().Return(nil).Times(1)
	session.EXPECT().Disable().Return(nil).Times(1)

	outcome, err := d.Show(1, 1, "Enter your number: ")
	if err != nil {
		t.Fatalf("Show returned error: %v", err)
	}
	if outcome.Confirmed || outcome.Value != 0 {
		t.Errorf("outcome = %+v, want Cancelled", outcome)
	}
}

func TestDialog_CapacityLimit(t *testing.T) {
	// 11桁目はベルとともに拒否され、最初の10桁だけが確定する
	d, session, out := setupDialog(t, []string{"12345678901\n"})
	session.EXPECT().Enable().Return(nil).Times(1)
	session.EXPECT().Disable().Return(nil).Times(1)

	outcome, err := d.Show(1, 1, "Enter your number: ")
	if err != nil {
		t.Fatalf("Show returned error: %v", err)
	}
	if !outcome.Confirmed || outcome.Value != 1234567890 {
		t.Errorf("outcome = %+v, want Confirmed(1234567890)", outcome)
	}
	if !strings.Contains(out.String(), "\a") {
		t.Error("11th digit should ring the bell")
	}
}

func TestDialog_IllegalCharacters(t *testing.T) {
	// 不正な文字はベルだけでバッファを変更しない
	d, session, out := setupDialog(t, []string{"a", "1", "b", "2", "\n"})
	session.EXPECT().Enable().Return(nil).Times(1)
	session.EXPECT().Disable().Return(nil).Times(1)

	outcome, err := d.Show(1, 1, "Enter your number: ")
	if err != nil {
		t.Fatalf("Show returned error: %v", err)
	}
	if !outcome.Confirmed || outcome.Value != 12 {
		t.Errorf("outcome = %+v, want Confirmed(12)", outcome)
	}
	if strings.Count(out.String(), "\a") != 2 {
		t.Errorf("expected 2 alerts, output: %q", out.String())
	}
}

func TestDialog_DeleteOnEmpty(t *testing.T) {
	// 空のバッファに対する削除はベルだけで状態は変わらない
	d, session, out := setupDialog(t, []string{"d", "5", "\n"})
	session.EXPECT().Enable().Return(nil).Times(1)
	session.EXPECT().Disable().Return(nil).Times(1)

	outcome, err := d.Show(1, 1, "Enter your number: ")
	if err != nil {
		t.Fatalf("Show returned error: %v", err)
	}
	if !outcome.Confirmed || outcome.Value != 5 {
		t.Errorf("outcome = %+v, want Confirmed(5)", outcome)
	}
	if !strings.Contains(out.String(), "\a") {
		t.Error("delete on empty buffer should ring the bell")
	}
}

func TestDialog_RawModeFailure(t *testing.T) {
	// rawモードに入れない場合はエラーを返し、復元は呼ばれない
	d, session, _ := setupDialog(t, nil)
	session.EXPECT().Enable().Return(fmt.Errorf("not a tty")).Times(1)

	if _, err := d.Show(1, 1, "Enter your number: "); err == nil {
		t.Error("Show should fail when raw mode cannot be enabled")
	}
}

func TestDialog_ReadErrorRestoresTerminal(t *testing.T) {
	// 読み取りエラーでもrawモードは1回だけ解除される
	d, session, _ := setupDialog(t, nil)
	session.EXPECT().Enable().Return(nil).Times(1)
	session.EXPECT().Disable().Return(nil).Times(1)

	if _, err := d.Show(1, 1, "Enter your number: "); err == nil {
		t.Error("Show should fail when input cannot be read")
	}
}
