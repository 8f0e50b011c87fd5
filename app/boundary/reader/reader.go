package reader

import (
	"fmt"
	"os"
)

type StandardKeyReader struct{}

type KeyReader interface {
	Read() ([]byte, int, error)
}

func NewStandardKeyReader() *StandardKeyReader {
	return &StandardKeyReader{}
}

// Read は標準入力から1回分のキー入力を読み取る
// rawモードでは最低1バイトがそろうまでブロックする。先行入力があれば複数バイトが返る
func (kr *StandardKeyReader) Read() ([]byte, int, error) {
	buf := make([]byte, 16)
	n, err := os.Stdin.Read(buf[:])
	if err != nil {
		return nil, n, fmt.Errorf("input error: %v", err)
	}
	if n == 0 {
		return nil, n, fmt.Errorf("no input")
	}

	return buf, n, nil
}
