package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spartakraz/integer-input-dialog/app/boundary/logger"
	"github.com/spartakraz/integer-input-dialog/app/boundary/provider/input"
	"github.com/spartakraz/integer-input-dialog/app/boundary/reader"
	"github.com/spartakraz/integer-input-dialog/app/boundary/writer"
	"github.com/spartakraz/integer-input-dialog/app/config"
	"github.com/spartakraz/integer-input-dialog/app/entity/core/term"
	"github.com/spartakraz/integer-input-dialog/app/entity/screen"
	"github.com/spartakraz/integer-input-dialog/app/usecase/dialog"
	"github.com/spartakraz/integer-input-dialog/app/usecase/parser"
)

func main() {
	conf := config.LoadConfig()
	log := logger.New(conf.DebugMode)
	defer log.Flush()

	session := term.NewStandardSession()

	// グローバルなパニックハンドラを設定
	defer func() {
		if r := recover(); r != nil {
			// パニック時に必ず端末状態を復元する
			session.Disable()
			fmt.Fprintf(os.Stderr, "Dialog crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s", debug.Stack())
			os.Exit(1)
		}
	}()

	// シグナル処理用のゴルーチン
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		session.Disable()
		os.Exit(0)
	}()

	// 画面まわりの初期化
	screenRows, screenCols, err := term.GetWinSize()
	if err != nil {
		die(fmt.Errorf("failed to get window size: %w", err))
	}
	scr := screen.NewScreen(
		screen.NewBuilder(),
		writer.NewStandardScreenWriter(),
		screenRows,
		screenCols,
		conf.BellEnabled,
	)

	// インプットプロバイダの初期化
	keyParser := parser.NewStandardInputParser(log)
	keyReader := reader.NewStandardKeyReader()
	inputProvider := input.NewStandardInputProvider(keyReader, keyParser)

	d := dialog.New(scr, session, inputProvider, log, conf)

	if err := scr.ClearScreen(); err != nil {
		die(err)
	}

	outcome, err := d.Show(1, 1, "Enter your number: ")
	if err != nil {
		// rawモードのまま終了しないように念のため復元する
		session.Disable()
		die(err)
	}

	fmt.Print("\n")
	if outcome.Confirmed {
		fmt.Printf("Your number is %d\n", outcome.Value)
	}
}

func die(err error) {
	fmt.Print("\x1b[2J") // 画面をクリア
	fmt.Print("\x1b[H")  // カーソルを左上に移動
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
