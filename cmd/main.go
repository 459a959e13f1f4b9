// Command wordfix repairs OCR text read from stdin, or recognized from an
// image with -image, and writes the result to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"wordfix/internal/config"
	"wordfix/internal/customdict"
	"wordfix/internal/ocr"
	"wordfix/internal/ocr/tesseract"
	"wordfix/internal/wordfix"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	modeName := flag.String("mode", string(wordfix.ModeFix), "split, join, spell, fix-space or fix")
	imagePath := flag.String("image", "", "recognize this image instead of reading stdin")
	lang := flag.String("lang", "eng", "tesseract language for -image")
	flag.Parse()

	log.SetOutput(os.Stderr)

	mode, err := wordfix.ParseMode(*modeName)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	ctx := context.Background()
	store, err := customdict.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}
	defer store.Close()

	svc, err := wordfix.Open(ctx, cfg, store)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	if *imagePath != "" {
		data, err := os.ReadFile(*imagePath)
		if err != nil {
			log.Fatalf("read image: %v", err)
		}
		p := ocr.NewPipeline(tesseract.New(*lang), svc)
		res, err := p.Process(ctx, ocr.Input{ID: *imagePath, Image: data}, mode)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(res.Fixed)
		return
	}

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}
	out, err := svc.Model().Apply(mode, string(text))
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println(out)
}
