package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/swdee/go-camshift"
	"github.com/swdee/go-camshift/preprocess"
	"github.com/swdee/go-camshift/render"
	"gocv.io/x/gocv"
)

// ROI is the tracking output written to stdout for each processed frame
type ROI struct {
	Frame  int  `json:"frame"`
	X      int  `json:"x_offset"`
	Y      int  `json:"y_offset"`
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Lost   bool `json:"lost"`
}

// Demo defines the struct for running the CamShift tracking demo
type Demo struct {
	// video is the source of frames
	video *gocv.VideoCapture
	// conv converts BGR frames to HSV
	conv *preprocess.Converter
	// tracker is the CamShift pipeline
	tracker *camshift.Tracker
	// windows used for display
	frameWin *gocv.Window
	histWin  *gocv.Window
	hueWin   *gocv.Window
	paramWin *gocv.Window
	backWin  *gocv.Window
	// trackbars on the parameters window keyed by name
	trackbars map[string]*gocv.Trackbar
	// out writes ROI results as JSON lines
	out         *json.Encoder
	font        render.Font
	boxStyle    render.BoxStyle
	trailStyle  render.TrailStyle
	frameNumber int
	// plotFile is where the histogram chart is saved on each selection,
	// empty to disable
	plotFile string
}

// NewDemo returns an instance of Demo reading frames from the video source
// which can be a file path or camera device id
func NewDemo(source string, blur, trailSize int, params *camshift.Params,
	logger *slog.Logger) (*Demo, error) {

	var (
		video *gocv.VideoCapture
		err   error
	)

	if id, convErr := strconv.Atoi(source); convErr == nil {
		video, err = gocv.OpenVideoCapture(id)
	} else {
		video, err = gocv.OpenVideoCapture(source)
	}

	if err != nil {
		return nil, fmt.Errorf("error opening video source %s: %w", source, err)
	}

	d := &Demo{
		video: video,
		conv:  preprocess.NewConverter(blur),
		tracker: camshift.New(params,
			camshift.WithTrail(trailSize),
			camshift.WithLogger(logger),
		),
		frameWin:   gocv.NewWindow("CamShift"),
		histWin:    gocv.NewWindow("Histogram"),
		hueWin:     gocv.NewWindow("Hue Graph"),
		paramWin:   gocv.NewWindow("Parameters"),
		trackbars:  make(map[string]*gocv.Trackbar),
		out:        json.NewEncoder(os.Stdout),
		font:       render.DefaultFont(),
		boxStyle:   render.DefaultBoxStyle(),
		trailStyle: render.DefaultTrailStyle(),
	}

	d.histWin.MoveWindow(700, 50)
	d.hueWin.MoveWindow(700, 350)

	// trackbars mirror the tracker parameters
	snap := params.Snapshot()
	d.addTrackbar("Saturation", snap.SMin)
	d.addTrackbar("Min Value", snap.VMin)
	d.addTrackbar("Max Value", snap.VMax)
	d.addTrackbar("Threshold", snap.Threshold)

	return d, nil
}

// addTrackbar creates a 0-255 trackbar on the parameters window
func (d *Demo) addTrackbar(name string, pos int) {
	tb := d.paramWin.CreateTrackbar(name, 255)
	tb.SetPos(pos)
	d.trackbars[name] = tb
}

// readTrackbars copies the trackbar positions into the tracker parameters
func (d *Demo) readTrackbars() {
	p := d.tracker.Params()
	p.SetSMin(d.trackbars["Saturation"].GetPos())
	p.SetVMin(d.trackbars["Min Value"].GetPos())
	p.SetVMax(d.trackbars["Max Value"].GetPos())
	p.SetThreshold(d.trackbars["Threshold"].GetPos())
}

// Close frees all resources used by the demo
func (d *Demo) Close() {
	d.video.Close()
	d.conv.Close()
	d.frameWin.Close()
	d.histWin.Close()
	d.hueWin.Close()
	d.paramWin.Close()

	if d.backWin != nil {
		d.backWin.Close()
	}
}

// Select queues the selection for the next frame
func (d *Demo) Select(r image.Rectangle) {
	if r.Empty() {
		return
	}
	log.Printf("Tracking selection %v", r)
	d.tracker.Select(r)
}

// Run reads and tracks frames until the video ends, the context is cancelled
// or the user presses ESC or q
func (d *Demo) Run(ctx context.Context) error {

	img := gocv.NewMat()
	defer img.Close()

	for {
		if ctx.Err() != nil {
			return nil
		}

		if ok := d.video.Read(&img); !ok {
			log.Printf("End of video reached")
			return nil
		}

		if img.Empty() {
			continue
		}

		d.frameNumber++

		if err := d.ProcessFrame(ctx, &img); err != nil {
			return err
		}

		switch key := d.frameWin.WaitKey(1); key {
		case 27, 'q':
			return nil

		case 's':
			// pause on the current frame to let the user select a region
			d.Select(gocv.SelectROI("CamShift", img))

		case 'b':
			d.toggleBackProjection()

		case 'c':
			d.tracker.Reset()
			log.Printf("Tracking cleared")
		}
	}
}

// toggleBackProjection shows or hides the back projection window
func (d *Demo) toggleBackProjection() {
	if d.backWin == nil {
		d.backWin = gocv.NewWindow("Backproject")
		return
	}

	d.backWin.Close()
	d.backWin = nil
}

// ProcessFrame tracks the object in img, annotates img and outputs the ROI
func (d *Demo) ProcessFrame(ctx context.Context, img *gocv.Mat) error {

	d.readTrackbars()

	frame, err := d.conv.Convert(*img)

	if err != nil {
		return fmt.Errorf("error converting frame: %w", err)
	}

	res, err := d.tracker.Process(ctx, frame)

	if err != nil {
		return fmt.Errorf("error processing frame: %w", err)
	}

	if res.Selected {
		model := d.tracker.State().Histogram

		hist := render.HistogramBars(model)
		d.histWin.IMShow(hist)
		hist.Close()

		graph, err := gocv.ImageToMatRGB(render.HueGraph(model, render.DefaultHueGraphStyle()))

		if err == nil {
			d.hueWin.IMShow(graph)
			graph.Close()
		}

		if d.plotFile != "" {
			title := fmt.Sprintf("Selection at frame %d", d.frameNumber)

			if err := render.SaveHistogramPlot(model, title, d.plotFile); err != nil {
				log.Printf("Error saving histogram plot: %v", err)
			}
		}
	}

	if !res.Tracking {
		d.frameWin.IMShow(*img)
		return nil
	}

	render.SearchWindow(img, res.Search.Window, render.Blue)
	render.Trail(img, d.tracker.Trail(), d.trailStyle)
	render.TrackBox(img, res.Search.Box, res.ROI, d.font, d.boxStyle)

	d.frameWin.IMShow(*img)

	if d.backWin != nil {
		back, err := render.BackProjection(res.Likelihood)

		if err == nil {
			d.backWin.IMShow(back)
			back.Close()
		}
	}

	x, y, w, h := res.RegionOfInterest()

	return d.out.Encode(ROI{
		Frame:  d.frameNumber,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Lost:   res.Search.Lost,
	})
}

// parseROI parses a selection in the format x,y,width,height
func parseROI(s string) (image.Rectangle, error) {

	parts := strings.Split(s, ",")

	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("expected x,y,width,height, got %q", s)
	}

	var vals [4]int

	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))

		if err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid ROI value %q: %w", p, err)
		}

		vals[i] = v
	}

	return camshift.SelectionRect(vals[0], vals[1], vals[2], vals[3]), nil
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	source := flag.String("v", "0", "Video file or camera device id to track on")
	roi := flag.String("roi", "", "Initial selection in the format x,y,width,height, press 's' to select interactively")
	smin := flag.Int("smin", camshift.DefaultSMin, "Minimum saturation of valid pixels [0-255]")
	vmin := flag.Int("vmin", camshift.DefaultVMin, "Minimum value of valid pixels [0-255]")
	vmax := flag.Int("vmax", camshift.DefaultVMax, "Maximum value of valid pixels [0-255]")
	threshold := flag.Int("t", camshift.DefaultThreshold, "Back projection threshold [0-255]")
	blur := flag.Int("blur", preprocess.DefaultBlurSize, "Box blur kernel size applied before tracking, 0 to disable")
	trailSize := flag.Int("trail", 90, "Number of track points to draw as a trail, 0 to disable")
	debug := flag.Bool("debug", false, "Log track events to stderr")
	plotFile := flag.String("plot", "", "Save a chart of the selection histogram to this file (.png, .svg or .pdf)")

	flag.Parse()

	params := camshift.NewParams()
	params.Set(camshift.Snapshot{
		SMin:      *smin,
		VMin:      *vmin,
		VMax:      *vmax,
		Threshold: *threshold,
	})

	var logger *slog.Logger

	if *debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	demo, err := NewDemo(*source, *blur, *trailSize, params, logger)

	if err != nil {
		log.Fatalf("Error creating demo: %v", err)
	}

	defer demo.Close()

	demo.plotFile = *plotFile

	if *roi != "" {
		sel, err := parseROI(*roi)

		if err != nil {
			log.Fatalf("Error parsing ROI: %v", err)
		}

		demo.Select(sel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Press 's' to select a region, 'b' to toggle back projection, 'c' to clear, 'q' to quit")

	if err := demo.Run(ctx); err != nil {
		log.Fatalf("Error tracking video: %v", err)
	}
}
