package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/atotto/clipboard"

	treeform "github.com/SteampunkIslande/adaptive-tree-widget"
	htmlrenderer "github.com/SteampunkIslande/adaptive-tree-widget/pkg/renderers/html"
	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/renderers/tui"
)

func main() {
	schemaFlag := flag.String("schema", "", "schema document path or URL (json or yaml)")
	rendererFlag := flag.String("renderer", "tui", "renderer to use (tui, html)")
	outputFlag := flag.String("output", "", "output file (stdout if empty)")
	copyFlag := flag.Bool("copy", false, "copy the aggregated line to the system clipboard (tui only)")
	timeoutFlag := flag.Duration("timeout", 15*time.Second, "schema fetch timeout")
	workDirFlag := flag.String("workdir", "", "directory file paths are made relative to (default: current directory)")
	flag.Parse()

	if *schemaFlag == "" {
		log.Fatal("a schema document is required (-schema)")
	}

	src := treeform.ParseSource(*schemaFlag)
	if src == nil {
		log.Fatalf("invalid schema source: %q", *schemaFlag)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	loader := treeform.NewLoader(treeform.LoaderOptions{
		AllowHTTP:      true,
		RequestTimeout: *timeoutFlag,
	})
	session := treeform.NewSession(treeform.WithLoader(loader))

	if err := session.Load(ctx, src); err != nil {
		log.Fatalf("load schema: %v", err)
	}

	switch *rendererFlag {
	case "tui":
		runTUI(session, *outputFlag, *copyFlag, *workDirFlag)
	case "html":
		runHTML(ctx, session, *outputFlag)
	default:
		log.Fatalf("unknown renderer %q (available: tui, html)", *rendererFlag)
	}
}

func runTUI(session *treeform.Session, output string, copyOut bool, workDir string) {
	if workDir == "" {
		if cwd, err := os.Getwd(); err == nil {
			workDir = cwd
		}
	}

	walker, err := tui.New(tui.WithWorkDir(workDir))
	if err != nil {
		log.Fatalf("create walker: %v", err)
	}

	// Prompts have no deadline; only the schema fetch is bounded.
	line, err := walker.Run(context.Background(), session)
	if err != nil {
		log.Fatalf("run form: %v", err)
	}

	if copyOut {
		if err := clipboard.WriteAll(line); err != nil {
			log.Fatalf("copy to clipboard: %v", err)
		}
		fmt.Println("Copied to clipboard.")
	}

	writeResult([]byte(line+"\n"), output)
}

func runHTML(ctx context.Context, session *treeform.Session, output string) {
	renderer, err := htmlrenderer.New()
	if err != nil {
		log.Fatalf("create renderer: %v", err)
	}

	doc, err := renderer.Render(ctx, session)
	if err != nil {
		log.Fatalf("render form: %v", err)
	}

	writeResult(doc, output)
}

func writeResult(data []byte, output string) {
	if output == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	fmt.Printf("Written to %s\n", output)
}
