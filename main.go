package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"texteditor/commands"
	"texteditor/config"
	"texteditor/editor"
	Files "texteditor/files"
	"texteditor/layout"
	"texteditor/theme"
)

type Application struct {
	file     *string
	editor   *editor.State
	config   *config.Config
	commands *commands.Commands
	styles   *theme.Theme
	screen   tcell.Screen

	editorDims layout.Dimensions
	mouseDown  bool

	log *log.Logger
}

// screenSurface adapts the tcell screen to the cell grid the editor draws
// into.
type screenSurface struct {
	s tcell.Screen
}

func (w screenSurface) SetCell(x, y int, r rune, style tcell.Style) {
	w.s.SetContent(x, y, r, nil, style)
}

func NewLogger() *log.Logger {
	file, err := os.OpenFile("app.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}
	multi := io.MultiWriter(file)
	return log.New(multi, "", log.LstdFlags|log.Lshortfile)
}

func (app *Application) handleInput(s tcell.Screen, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			app.quit(s)
		} else if ev.Key() == tcell.KeyCtrlL {
			s.Sync()
		} else if ev.Key() == tcell.KeyCtrlS {
			app.commands.Exec("write")
		} else if kev, ok := translateKey(ev); ok {
			editor.HandleKey(app.editor, app.config.Editor(), kev)
		}
	case *tcell.EventMouse:
		app.handleMouse(ev)
	}
}

// translateKey maps tcell's key numbering onto the editor's dispatch codes.
func translateKey(ev *tcell.EventKey) (editor.KeyEvent, bool) {
	var mod editor.Mod
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= editor.ModShift
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= editor.ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= editor.ModAlt
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		return editor.KeyEvent{Key: editor.KeyLeft, Mod: mod}, true
	case tcell.KeyRight:
		return editor.KeyEvent{Key: editor.KeyRight, Mod: mod}, true
	case tcell.KeyUp:
		return editor.KeyEvent{Key: editor.KeyUp, Mod: mod}, true
	case tcell.KeyDown:
		return editor.KeyEvent{Key: editor.KeyDown, Mod: mod}, true
	case tcell.KeyHome:
		return editor.KeyEvent{Key: editor.KeyHome, Mod: mod}, true
	case tcell.KeyEnd:
		return editor.KeyEvent{Key: editor.KeyEnd, Mod: mod}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.KeyEvent{Key: editor.KeyBackspace, Mod: mod}, true
	case tcell.KeyDelete:
		return editor.KeyEvent{Key: editor.KeyDelete, Mod: mod}, true
	case tcell.KeyEnter:
		return editor.KeyEvent{Key: editor.KeyEnter, Mod: mod}, true
	case tcell.KeyTab:
		return editor.KeyEvent{Key: editor.KeyTab, Mod: mod}, true
	case tcell.KeyRune:
		return editor.KeyEvent{Key: editor.KeyRune, Rune: ev.Rune(), Mod: mod}, true
	}
	return editor.KeyEvent{}, false
}

func (app *Application) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	cfg := app.config.Editor()
	contentW, contentH := editor.ContentSize(app.editor, cfg, app.editorDims)

	gutterW := 0
	if cfg.ShowLineNumbers {
		gutterW = cfg.LineNumberWidth
	}
	minX := app.editorDims.Origin.X + gutterW
	minY := app.editorDims.Origin.Y
	inContent := x >= minX && x < minX+contentW && y >= minY && y < minY+contentH

	pos := editor.Pos{
		Line: y - minY + app.editor.ScrollY,
		Col:  x - minX + app.editor.ScrollX,
	}
	shift := ev.Modifiers()&tcell.ModShift != 0

	if ev.Buttons()&tcell.Button1 != 0 {
		if !app.mouseDown {
			// clicks on the gutters or the status line never start a
			// gesture; drags may leave the rect, MouseDrag clamps them
			if !inContent {
				return
			}
			app.mouseDown = true
			editor.HandleMouse(app.editor, editor.MouseEvent{Kind: editor.MousePressEvent, Pos: pos, Shift: shift}, contentH)
		} else {
			editor.HandleMouse(app.editor, editor.MouseEvent{Kind: editor.MouseDragEvent, Pos: pos}, contentH)
		}
	} else if app.mouseDown {
		app.mouseDown = false
		editor.HandleMouse(app.editor, editor.MouseEvent{Kind: editor.MouseReleaseEvent}, contentH)
	}
}

func (app *Application) editorBox(dims layout.Dimensions) {
	app.editorDims = dims
	cfg := app.config.Editor()
	app.editor.TabWidth = cfg.TabWidth

	w, h := editor.ContentSize(app.editor, cfg, dims)
	app.editor.UpdateScroll(w, h)
	editor.Draw(screenSurface{app.screen}, app.styles, app.editor, cfg, dims)
}

func (app *Application) statusLineBox(dims layout.Dimensions) {
	name := "[no file]"
	if app.file != nil {
		name = *app.file
	}
	modified := ""
	if app.editor.Buf.Modified {
		modified = " [+]"
	}
	status := fmt.Sprintf(" %s%s  %d:%d", name, modified, app.editor.Cursor.Line+1, app.editor.Cursor.Col+1)
	drawText(app.screen, dims, app.styles.Style("status"), status)
}

func drawText(s tcell.Screen, dims layout.Dimensions, style tcell.Style, text string) {
	x := dims.Origin.X
	for i := 0; i < dims.Width; i++ {
		s.SetContent(x+i, dims.Origin.Y, ' ', nil, style)
	}
	for _, r := range text {
		if x >= dims.Origin.X+dims.Width {
			break
		}
		s.SetContent(x, dims.Origin.Y, r, nil, style)
		x++
	}
}

func (app *Application) save() error {
	if app.file == nil {
		return nil
	}
	if err := Files.Write(*app.file, strings.NewReader(app.editor.Buf.String())); err != nil {
		return err
	}
	app.editor.Buf.Modified = false
	app.log.Printf("wrote %v", *app.file)
	return nil
}

func (app *Application) quit(s tcell.Screen) {
	maybePanic := recover()
	s.Fini()

	if err := app.save(); err != nil {
		log.Fatalf("%+v", err)
	}

	if maybePanic != nil {
		panic(maybePanic)
	}
	os.Exit(0)
}

func main() {
	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("%+v", err)
	}
	s.SetStyle(theme.DefaultStyle)
	s.EnableMouse()
	s.EnablePaste()
	s.HideCursor()
	s.Clear()

	logger := NewLogger()
	cfg := config.NewConfig(logger)
	if err := cfg.Init(); err != nil {
		s.Fini()
		log.Fatalf("%+v", err)
	}
	defer cfg.Cleanup()

	app := &Application{
		config:   cfg,
		commands: commands.NewCommands(logger),
		styles:   theme.Default(),
		screen:   s,
		log:      logger,
	}

	flag.Parse()
	file := flag.Arg(0)

	if file == "" {
		app.editor = editor.NewState("", logger)
		logger.Print("started without a file, editing an empty document")
	} else {
		app.file = &file
		content, err := Files.Read(file)
		if err != nil && !os.IsNotExist(err) {
			s.Fini()
			log.Fatalf("%+v", err)
		}
		app.editor = editor.NewState(content, logger)
		logger.Printf("opened %v (%d lines)", file, app.editor.Buf.LineCount())
	}

	app.commands.Register("write", app.save)
	app.commands.Register("goto-start", func() error { app.editor.MoveCursorToBufferStart(); return nil })
	app.commands.Register("goto-end", func() error { app.editor.MoveCursorToBufferEnd(); return nil })

	// Catch panics in a defer, clean up, and re-raise them - otherwise the
	// application can die without leaving any diagnostic trace.
	defer app.quit(s)

	flex := layout.Column(
		layout.FlexItemBox(app.editorBox, layout.Max(layout.Rel(1)), nil),
		layout.FlexItemBox(app.statusLineBox, layout.Exact(layout.Abs(1)), nil),
	)

	for {
		width, height := s.Size()
		s.Clear()
		flex.StartLayouting(width, height)
		s.Show()

		ev := s.PollEvent()
		app.handleInput(s, ev)
	}
}
