package dialog

import (
	"fmt"

	"github.com/spartakraz/integer-input-dialog/app/boundary/provider/input"
	"github.com/spartakraz/integer-input-dialog/app/config"
	"github.com/spartakraz/integer-input-dialog/app/entity/core"
	"github.com/spartakraz/integer-input-dialog/app/entity/core/term"
	"github.com/spartakraz/integer-input-dialog/app/entity/digits"
	"github.com/spartakraz/integer-input-dialog/app/entity/key"
	"github.com/spartakraz/integer-input-dialog/app/entity/screen"
)

// Outcome はダイアログの結果を表す
// Confirmedがtrueの場合のみValueが意味を持つ
type Outcome struct {
	Confirmed bool
	Value     int64
}

// Dialog は整数入力ダイアログの状態を管理する構造体
// 同時に開けるダイアログは1つだけで、ネストした呼び出しはサポートしない
type Dialog struct {
	screen        *screen.Screen
	session       term.Session
	inputProvider input.Provider
	logger        core.Logger
	config        *config.Config
	pending       []key.KeyEvent
}

func New(
	screen *screen.Screen,
	session term.Session,
	inputProvider input.Provider,
	logger core.Logger,
	conf *config.Config,
) *Dialog {
	return &Dialog{
		screen:        screen,
		session:       session,
		inputProvider: inputProvider,
		logger:        logger,
		config:        conf,
	}
}

// Show は(x, y)を左上としてダイアログを表示し、ユーザーの入力を待つ
// xとyは1始まりの画面座標。yの行にプロンプト、y+1の行に入力行が置かれる
// 端末をrawモードにできない場合はエラーを返す
func (d *Dialog) Show(x, y int, prompt string) (Outcome, error) {
	buffer := digits.NewBuffer()
	d.pending = d.pending[:0]

	if err := d.screen.DrawPrompt(x, y, prompt); err != nil {
		return Outcome{}, err
	}

	if err := d.session.Enable(); err != nil {
		return Outcome{}, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	d.logger.Log("term", "raw mode enabled")

	// どの経路で抜けてもrawモードを1回だけ解除する
	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		d.logger.Log("term", "raw mode disabled")
		return d.session.Disable()
	}
	defer release()

	confirmed, err := d.editLoop(x, y, buffer)
	if err != nil {
		return Outcome{}, err
	}

	if err := release(); err != nil {
		return Outcome{}, fmt.Errorf("failed to restore terminal: %w", err)
	}

	if !confirmed {
		d.logger.Log("dialog", "input cancelled")
		if err := d.screen.ShowCancelled(x, y, d.config.CancelNotice); err != nil {
			return Outcome{}, err
		}
		return Outcome{Confirmed: false}, nil
	}

	value := buffer.ToInt()
	d.logger.Log("dialog", fmt.Sprintf("input confirmed: %d", value))
	return Outcome{Confirmed: true, Value: value}, nil
}

// editLoop は1文字ずつ入力を処理し、確定で抜けたかどうかを返す
// キャンセルと確定以外のイベントでは必ず入力行を再描画する
func (d *Dialog) editLoop(x, y int, buffer *digits.Buffer) (bool, error) {
	for {
		ev, err := d.nextEvent()
		if err != nil {
			return false, err
		}

		switch {
		case ev.Type == key.KeyEventSpecial && ev.Key == key.KeyEsc:
			return false, nil

		case ev.Type == key.KeyEventSpecial && ev.Key == key.KeyEnter:
			// 空のままの確定は受け付けない
			if buffer.IsEmpty() {
				d.alert()
			} else {
				return true, nil
			}

		case ev.Type == key.KeyEventSpecial && ev.Key == key.KeyDelete:
			if err := buffer.DeleteLast(); err != nil {
				d.alert()
			}

		case ev.Type == key.KeyEventDigit:
			if err := buffer.Append(ev.Rune); err != nil {
				d.alert()
			}

		default:
			d.logger.Log("input", fmt.Sprintf("illegal character rejected: %q", ev.Rune))
			d.alert()
		}

		if err := d.screen.RedrawInput(x, y, buffer.String()); err != nil {
			return false, err
		}
	}
}

// nextEvent は次のキーイベントを1つ返す
// 1回の読み取りで複数のイベントが得られた場合は残りを保持しておく
func (d *Dialog) nextEvent() (key.KeyEvent, error) {
	if len(d.pending) > 0 {
		ev := d.pending[0]
		d.pending = d.pending[1:]
		return ev, nil
	}

	ev, rest, err := d.inputProvider.GetInputEvents()
	if err != nil {
		return key.KeyEvent{}, err
	}
	d.pending = append(d.pending, rest...)
	return ev, nil
}

func (d *Dialog) alert() {
	if err := d.screen.Alert(); err != nil {
		d.logger.Log("error", fmt.Sprintf("alert failed: %v", err))
	}
}
