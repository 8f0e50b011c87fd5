package digits

import (
	"errors"
	"strconv"
)

// MaxDigits は入力バッファに保持できる桁数の上限
const MaxDigits = 10

// ErrRejected は受け付けられない編集操作を表すエラー。
// バッファの状態は変更されない
var ErrRejected = errors.New("input rejected")

// Buffer は確定前の数字列を保持する構造体
type Buffer struct {
	digits []byte
}

// NewBuffer は空のBufferを作成する
func NewBuffer() *Buffer {
	return &Buffer{
		digits: make([]byte, 0, MaxDigits),
	}
}

// Append は数字1文字を末尾に追加する
// 数字以外の文字、または桁数が上限に達している場合はErrRejectedを返す
func (b *Buffer) Append(ch rune) error {
	if ch < '0' || ch > '9' {
		return ErrRejected
	}
	if len(b.digits) >= MaxDigits {
		return ErrRejected
	}
	b.digits = append(b.digits, byte(ch))
	return nil
}

// DeleteLast は末尾の1桁を削除する
// バッファが空の場合はErrRejectedを返す
func (b *Buffer) DeleteLast() error {
	if len(b.digits) == 0 {
		return ErrRejected
	}
	b.digits = b.digits[:len(b.digits)-1]
	return nil
}

// ToInt はバッファの内容を10進数として解釈した値を返す
// 空のバッファは0になる。桁数はMaxDigitsまでに制限されているため値は必ずint64に収まる
func (b *Buffer) ToInt() int64 {
	if len(b.digits) == 0 {
		return 0
	}
	v, err := strconv.ParseInt(string(b.digits), 10, 64)
	if err != nil {
		// 数字以外はAppendで弾かれるためここには到達しない
		return 0
	}
	return v
}

// Len は現在の桁数を返す
func (b *Buffer) Len() int {
	return len(b.digits)
}

// IsEmpty はバッファが空かどうかを返す
func (b *Buffer) IsEmpty() bool {
	return len(b.digits) == 0
}

// String は画面表示用の数字列を返す
func (b *Buffer) String() string {
	return string(b.digits)
}
