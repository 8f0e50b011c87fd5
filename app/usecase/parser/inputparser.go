package parser

import (
	"fmt"

	"github.com/spartakraz/integer-input-dialog/app/entity/core"
	"github.com/spartakraz/integer-input-dialog/app/entity/key"
)

type StandardInputParser struct {
	logger core.Logger
}

type InputParser interface {
	Parse(buf []byte, n int) ([]key.KeyEvent, error)
}

func NewStandardInputParser(logger core.Logger) *StandardInputParser {
	return &StandardInputParser{
		logger: logger,
	}
}

// Parse はバイトデータを解析してキーイベントを返す
// ダイアログが認識するのは数字・'d'・確定・キャンセルのみで、それ以外はすべて不正な入力になる
func (p *StandardInputParser) Parse(buf []byte, n int) ([]key.KeyEvent, error) {
	if n == 0 {
		return nil, fmt.Errorf("empty input")
	}

	events := make([]key.KeyEvent, 0, n)
	for i := 0; i < n; i++ {
		// ESC以降は後続のシーケンスを含めて1回のキャンセルとして扱う
		// 矢印キー等が送るESCシーケンスもここでまとめて消費される
		if buf[i] == '\x1b' {
			if n-i > 1 {
				p.logger.Log("input", fmt.Sprintf("escape sequence of %d bytes treated as cancel", n-i))
			}
			events = append(events, key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyEsc})
			return events, nil
		}
		events = append(events, p.classify(buf[i]))
	}
	return events, nil
}

// classify は1バイトを1つのキーイベントに分類する
func (p *StandardInputParser) classify(b byte) key.KeyEvent {
	switch {
	case b == '\r' || b == '\n':
		return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyEnter}
	case b == 'd':
		return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyDelete}
	case b >= '0' && b <= '9':
		return key.KeyEvent{Type: key.KeyEventDigit, Rune: rune(b)}
	default:
		return key.KeyEvent{Type: key.KeyEventIllegal, Rune: rune(b)}
	}
}
