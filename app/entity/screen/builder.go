package screen

import (
	"fmt"
	"strings"
)

type Builder struct {
	buffer strings.Builder
}

func NewBuilder() *Builder {
	return &Builder{
		buffer: strings.Builder{},
	}
}

func (b *Builder) Clear() {
	b.buffer.Reset()
}

func (b *Builder) Write(s string) {
	b.buffer.WriteString(s)
}

// MoveCursor はカーソルを指定位置に移動するシーケンスを返す
// rowとcolは1始まりの画面座標
func (b *Builder) MoveCursor(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

func (b *Builder) Build() string {
	return b.buffer.String()
}
