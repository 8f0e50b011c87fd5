package input

import (
	"fmt"

	"github.com/spartakraz/integer-input-dialog/app/boundary/reader"
	"github.com/spartakraz/integer-input-dialog/app/entity/key"
	"github.com/spartakraz/integer-input-dialog/app/usecase/parser"
)

type Provider interface {
	GetInputEvents() (key.KeyEvent, []key.KeyEvent, error)
}

type StandardInputProvider struct {
	reader reader.KeyReader
	parser parser.InputParser
}

func NewStandardInputProvider(reader reader.KeyReader, parser parser.InputParser) *StandardInputProvider {
	return &StandardInputProvider{
		reader: reader,
		parser: parser,
	}
}

// GetInputEvents は次のキーイベントを返す
// 1回の読み取りで複数のイベントが得られた場合、2番目以降もあわせて返す
func (p *StandardInputProvider) GetInputEvents() (key.KeyEvent, []key.KeyEvent, error) {
	buf, n, err := p.reader.Read()
	if err != nil {
		return key.KeyEvent{}, nil, fmt.Errorf("input error: %v", err)
	}
	if n == 0 {
		return key.KeyEvent{}, nil, fmt.Errorf("no input")
	}
	events, err := p.parser.Parse(buf, n)
	if err != nil {
		return key.KeyEvent{}, nil, fmt.Errorf("input error: %v", err)
	}
	return events[0], events[1:], nil
}
