package display

import (
	"github.com/pkg/errors"
	"image"
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/logger"
)

type State int

const (
	Empty State = iota
	Loaded
	Rendered
)

func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Loaded:
		return "Loaded"
	case Rendered:
		return "Rendered"
	}
	return "Unknown"
}

// Frame is the bitmap currently on screen and where it is drawn.
// Generation grows every time a new bitmap is produced.
type Frame struct {
	ImageFile  *apitype.ImageFile
	Bitmap     image.Image
	Fit        apitype.Fit
	Area       apitype.Size
	Generation int
}

// FrameListener is told about every newly rendered frame.
type FrameListener interface {
	FrameRendered(*Frame)
}

// Panel owns what is shown: the image, the fit mode and the display
// area. It is not safe for concurrent use; the GUI thread drives it.
type Panel struct {
	imageStore api.ImageStore
	listener   FrameListener
	imageFile  *apitype.ImageFile
	imageSize  apitype.Size
	area       apitype.Size
	mode       apitype.FitMode
	state      State
	frame      *Frame
	generation int
}

func NewPanel(imageStore api.ImageStore, mode apitype.FitMode, listener FrameListener) *Panel {
	return &Panel{
		imageStore: imageStore,
		listener:   listener,
		mode:       mode,
		state:      Empty,
	}
}

// SetImage replaces the shown image. Images without pixels are rejected
// and leave the panel as it was.
func (s *Panel) SetImage(imageFile *apitype.ImageFile, imageSize apitype.Size) error {
	if !imageSize.IsPositive() {
		return errors.Wrapf(apitype.ErrInvalidImageDimensions, "%s is %s", imageFile, imageSize)
	}

	logger.Debug.Printf("Showing %s (%s)", imageFile, imageSize)
	s.imageFile = imageFile
	s.imageSize = imageSize
	s.frame = nil
	s.state = Loaded

	if s.area.IsPositive() {
		return s.render()
	}
	return nil
}

// SetFitMode changes the fit mode and redraws a loaded image.
func (s *Panel) SetFitMode(mode apitype.FitMode) error {
	if mode == s.mode {
		return nil
	}
	logger.Debug.Printf("Fit mode changed to %s", mode)
	s.mode = mode
	return s.Refresh()
}

// Resize records the new display area and redraws a loaded image.
// An area that cannot be drawn into keeps the previous frame.
func (s *Panel) Resize(area apitype.Size) error {
	if area == s.area {
		return nil
	}
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Display area changed from %s to %s", s.area, area)
	}
	s.area = area
	return s.Refresh()
}

// Refresh recomputes the fit and rescales the bitmap.
func (s *Panel) Refresh() error {
	if s.state == Empty {
		return nil
	}
	return s.render()
}

func (s *Panel) render() error {
	fit, err := apitype.ComputeFit(s.imageSize, s.area, s.mode)
	if err != nil {
		logger.Trace.Printf("Skip rendering %s in %s: %s", s.imageFile, s.area, err)
		return err
	}

	if s.frame != nil && s.frame.Fit == fit && s.frame.Area == s.area {
		return nil
	}

	bitmap, err := s.imageStore.GetScaled(s.imageFile.Id(), fit.Size)
	if err != nil {
		logger.Error.Printf("Could not scale %s to %s: %s", s.imageFile, fit.Size, err)
		return err
	}

	s.generation++
	s.frame = &Frame{
		ImageFile:  s.imageFile,
		Bitmap:     bitmap,
		Fit:        fit,
		Area:       s.area,
		Generation: s.generation,
	}
	s.state = Rendered

	if s.listener != nil {
		s.listener.FrameRendered(s.frame)
	}
	return nil
}

// Frame returns the frame to draw, if anything has been rendered.
func (s *Panel) Frame() (*Frame, bool) {
	return s.frame, s.frame != nil
}

func (s *Panel) State() State {
	return s.state
}

func (s *Panel) FitMode() apitype.FitMode {
	return s.mode
}

func (s *Panel) ImageFile() *apitype.ImageFile {
	return s.imageFile
}

func (s *Panel) ImageSize() apitype.Size {
	return s.imageSize
}

func (s *Panel) Area() apitype.Size {
	return s.area
}
