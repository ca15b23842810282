// cliclient is a CLI client for the deep zoom Mandelbrot server.
// It connects to the server, moves its viewport, requests one render and saves it as a PNG file.

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/coder/websocket"
	mandel "github.com/marben/deepzoom_mandel"
	"github.com/marben/deepzoom_mandel/imgout"
	"github.com/marben/deepzoom_mandel/wire"
	"github.com/marben/irpc"
)

type args struct {
	Addr    string        `arg:"--addr" default:"ws://localhost:8080/ws" help:"server websocket URL"`
	Region  string        `arg:"-r,--region" default:"full" help:"landmark to start from"`
	Width   int           `arg:"--width" default:"640" help:"image width in pixels"`
	Height  int           `arg:"--height" default:"480" help:"image height in pixels"`
	MaxIter int           `arg:"-i,--max-iter" default:"1000" help:"iteration cap"`
	Zooms   int           `arg:"-z,--zooms" help:"number of zoom-ins before rendering"`
	Factor  int           `arg:"-f,--factor" default:"50" help:"percent of the viewport kept by each zoom-in"`
	CursorX float64       `arg:"--cursor-x" default:"-1" help:"zoom on this display column instead of the centre"`
	CursorY float64       `arg:"--cursor-y" default:"-1" help:"zoom on this display row instead of the centre"`
	Out     string        `arg:"-o,--out" default:"mandel.png" help:"output PNG file"`
	Timeout time.Duration `arg:"--timeout" default:"10m" help:"give up after this long"`
}

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

// run connects to the Mandelbrot server, zooms its session, requests the rendered image, and saves it as a PNG file.
// Returns an error if any step fails.
func run() error {
	var a args
	arg.MustParse(&a)

	region, err := mandel.Landmark(a.Region)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	// Step 1: Connect to Mandelbrot server
	log.Printf("Connecting to Mandelbrot server on %s...", a.Addr)
	c, _, err := websocket.Dial(ctx, a.Addr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	ep := irpc.NewEndpoint(websocket.NetConn(ctx, c, websocket.MessageBinary))
	defer ep.Close()

	// Step 2: Create a client for the server side Session and move its viewport to the requested region
	log.Printf("Creating Session client...")
	client, err := mandel.NewSessionIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("failed to create Session client: %w", err)
	}
	log.Printf("Initializing viewport to %q...", a.Region)
	if err := client.Initialize(region.Xs, region.Xe, region.Ys, region.Ye, mandel.NoCenter, mandel.NoCenter); err != nil {
		return fmt.Errorf("client.Initialize: %w", err)
	}

	// Step 3: Zoom in, first on the cursor if one was given
	for i := 0; i < a.Zooms; i++ {
		if i == 0 && a.CursorX >= 0 && a.CursorY >= 0 {
			err = client.ZoomInViaCursor(a.CursorX, a.CursorY, a.Width, a.Height, a.Factor)
		} else {
			err = client.ZoomIn(a.Width, a.Height, a.Factor)
		}
		if err != nil {
			return fmt.Errorf("zoom %d: %w", i+1, err)
		}
		xs, xe, ys, ye := client.Bounds()
		log.Printf("Zoom level %d: [%s, %s] x [%s, %s]", client.ZoomLevel(), xs, xe, ys, ye)
	}

	// Step 4: Request the rendered image from the server
	log.Printf("Requesting %dx%d render with %d iterations...", a.Width, a.Height, a.MaxIter)
	frame, err := client.ComputeFrame(a.Width, a.Height, 0, 0, a.MaxIter)
	if err != nil {
		return fmt.Errorf("client.ComputeFrame: %w", err)
	}
	w, h, rgb, err := wire.DecodeFrame(frame)
	if err != nil {
		return err
	}

	// Step 5: Save the rendered image to a PNG file
	log.Printf("Saving rendered image to %q...", a.Out)
	img, err := imgout.ToRGBA(w, h, rgb)
	if err != nil {
		return err
	}
	if err := imgout.WritePNG(a.Out, img); err != nil {
		return err
	}

	log.Printf("Fully rendered image saved to %q", a.Out)
	return nil
}
