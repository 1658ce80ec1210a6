package ui

import (
	"fmt"
	"github.com/AllenDang/giu"
	"github.com/pkg/errors"
	"time"
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/event"
	"vincit.fi/image-viewer/common/logger"
	"vincit.fi/image-viewer/common/util"
	"vincit.fi/image-viewer/ui/display"
	"vincit.fi/image-viewer/ui/giu/internal"
	"vincit.fi/image-viewer/ui/giu/widget"
)

const windowTitle = "Image Viewer"

type Ui struct {
	win             *giu.MasterWindow
	sender          api.Sender
	imageCache      api.ImageStore
	guiQueue        *event.GuiQueue
	filePicker      api.FilePicker
	panel           *display.Panel
	textures        *internal.TextureManager
	areaTracker     *display.AreaTracker
	requests        *display.RequestTracker
	keepAspectRatio bool
	startupPath     string

	api.Gui
}

func NewUi(params *util.Params, broker api.Sender, imageCache api.ImageStore, guiQueue *event.GuiQueue) api.Gui {
	logger.Debug.Printf("Initialize UI...")
	textures := internal.NewTextureManager(guiQueue)
	windowSize := display.InitialWindowSize(screenSize())
	logger.Debug.Printf("Window size %s", windowSize)
	gui := &Ui{
		win:             giu.NewMasterWindow(windowTitle, windowSize.Width(), windowSize.Height(), 0),
		sender:          broker,
		imageCache:      imageCache,
		guiQueue:        guiQueue,
		filePicker:      NewFilePicker(),
		panel:           display.NewPanel(imageCache, apitype.FitModeOf(params.GetKeepAspectRatio()), textures),
		textures:        textures,
		areaTracker:     display.NewAreaTracker(display.DefaultResizeDebounce, giu.Update),
		requests:        display.NewRequestTracker(),
		keepAspectRatio: params.GetKeepAspectRatio(),
		startupPath:     params.GetImagePath(),
	}
	guiQueue.SetWakeup(giu.Update)
	logger.Debug.Printf("UI initialized")
	return gui
}

func (s *Ui) Run() {
	if s.startupPath != "" {
		s.openFile(s.startupPath)
	}

	s.win.Run(func() {
		renderStart := time.Now()

		if handled := s.guiQueue.Drain(); handled > 0 && logger.IsLogLevel(logger.TRACE) {
			logger.Trace.Printf("Handled %d queued calls", handled)
		}

		giu.SingleWindowWithMenuBar().
			Layout(
				s.menuBar(),
				giu.Label(s.statusText()),
				giu.Separator(),
				giu.Custom(s.buildImage),
				giu.PrepareMsgbox(),
			)
		s.handleKeyPress()

		renderTime := time.Since(renderStart)
		if renderTime >= time.Millisecond && logger.IsLogLevel(logger.TRACE) {
			logger.Trace.Printf("Rendered UI in %s", renderTime)
		} else if renderTime >= 10*time.Millisecond {
			logger.Debug.Printf("Rendered UI in %s", renderTime)
		}
	})
	s.areaTracker.Stop()
}

// Menu items have no shortcut column, the keys are handled in handleKeyPress.
func (s *Ui) menuBar() giu.Widget {
	return giu.MenuBar().Layout(
		giu.Menu("File").Layout(
			giu.MenuItem("Open...  (Ctrl+O)").OnClick(s.pickFile),
			giu.Separator(),
			giu.MenuItem("Quit  (Ctrl+Q)").OnClick(s.quit),
		),
		giu.Menu("View").Layout(
			giu.MenuItem("Keep Aspect Ratio  (A)").
				Selected(s.keepAspectRatio).
				OnClick(s.toggleKeepAspectRatio),
		),
	)
}

func (s *Ui) statusText() string {
	imageFile := s.panel.ImageFile()
	if s.panel.State() == display.Empty || imageFile == nil {
		return "No image. Open one with File > Open (Ctrl+O)."
	}

	status := fmt.Sprintf("%s  %s", imageFile.FileName(), s.panel.ImageSize())
	if frame, ok := s.panel.Frame(); ok {
		status += fmt.Sprintf("  shown at %s", frame.Fit.Size)
	}
	if s.textures.IsLoading() {
		status += "  (loading)"
	}
	return status
}

func (s *Ui) buildImage() {
	width, height := giu.GetAvailableRegion()
	if area, changed := s.areaTracker.Update(apitype.SizeOf(int(width), int(height))); changed {
		s.handleRenderError(s.panel.Resize(area))
	}

	if texturedImage, ok := s.textures.Current(); ok && s.panel.State() == display.Rendered {
		widget.ResizableImage(texturedImage).Build()
	}
}

func (s *Ui) handleKeyPress() {
	controlDown := giu.IsKeyDown(giu.KeyLeftControl) || giu.IsKeyDown(giu.KeyRightControl)

	if controlDown && giu.IsKeyPressed(giu.KeyO) {
		s.pickFile()
	} else if controlDown && giu.IsKeyPressed(giu.KeyQ) {
		s.quit()
	} else if !controlDown && giu.IsKeyPressed(giu.KeyA) {
		s.toggleKeepAspectRatio()
	}
}

// pickFile shows the modal file dialog. The frame loop is suspended
// until the user confirms or cancels.
func (s *Ui) pickFile() {
	path, err := s.filePicker.PickImageFile()
	if errors.Is(err, api.ErrPickerCancelled) {
		logger.Debug.Printf("File selection cancelled")
		return
	} else if err != nil {
		s.ShowError(&api.ErrorCommand{Message: fmt.Sprintf("Could not open the file dialog\n%s", err)})
		return
	}
	s.openFile(path)
}

func (s *Ui) openFile(path string) {
	requestId := s.requests.Begin()
	logger.Info.Printf("Opening '%s'", path)
	s.sender.SendCommandToTopic(api.ImageRequestOpen, &api.OpenImageCommand{
		RequestId: requestId,
		Path:      path,
	})
}

func (s *Ui) toggleKeepAspectRatio() {
	s.keepAspectRatio = !s.keepAspectRatio
	s.handleRenderError(s.panel.SetFitMode(apitype.FitModeOf(s.keepAspectRatio)))
}

func (s *Ui) quit() {
	logger.Info.Printf("Quit")
	s.win.Close()
}

func (s *Ui) SetImage(command *api.ImageLoadedCommand) {
	if !s.requests.Accept(command.RequestId) {
		logger.Debug.Printf("Ignoring outdated image %s of request %s, waiting for %s",
			command.ImageFile, command.RequestId, s.requests.Latest())
		return
	}

	err := s.panel.SetImage(command.ImageFile, command.Size)
	// Only the image on screen stays cached, a rejected one is dropped too
	s.imageCache.Purge(s.panel.ImageFile().Id())

	if errors.Is(err, apitype.ErrInvalidImageDimensions) {
		s.ShowError(&api.ErrorCommand{
			Message: fmt.Sprintf("Image has no pixels: '%s'", command.ImageFile.FileName()),
		})
		return
	}
	s.handleRenderError(err)

	if logger.IsLogLevel(logger.DEBUG) {
		logger.Debug.Printf("Image cache size %.2f MB", s.imageCache.GetSizeInMB())
	}
}

// handleRenderError logs failures of drawing into the current area.
// An undrawable area only means the window is minimized.
func (s *Ui) handleRenderError(err error) {
	if err == nil || errors.Is(err, apitype.ErrInvalidDisplayArea) {
		return
	}
	logger.Error.Printf("Could not render %s: %s", s.panel.ImageFile(), err)
}

func (s *Ui) ShowError(command *api.ErrorCommand) {
	logger.Error.Printf("Error: %s", command.Message)
	giu.Msgbox("Error", command.Message)
}
