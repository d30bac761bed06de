package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"os"

	"github.com/swdee/go-detmetrics"
	"github.com/swdee/go-detmetrics/render"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// size of the bird's eye view surface in pixels
	SurfaceSize = 640
	// TTF font size used when rendering the report with a custom font
	TTFFontSize = 18
)

// frame is one synthetic frame of ground truth boxes and predicted boxes
// with confidence scores
type frame struct {
	gt     detmetrics.FrameGroundTruth
	boxes  []detmetrics.Box
	scores []float64
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	saveFile := flag.String("o", "bev-eval-out.jpg", "The output JPG file with rendered boxes and AP summary")
	globalSort := flag.Bool("g", false, "Rank all detections across the whole dataset by score instead of per frame order")
	fontFile := flag.String("f", "", "Optional TTF font file used for the AP summary text")

	flag.Parse()

	eval := detmetrics.NewEvaluator(detmetrics.DefaultThresholds...)

	frames := makeFrames()

	for i, f := range frames {
		dets, err := detmetrics.NewFrameDetections(f.boxes, f.scores)

		if err != nil {
			log.Fatal("Error pairing detections with scores: ", err)
		}

		err = eval.AddFrame(dets, f.gt)

		if err != nil {
			log.Fatalf("Error accumulating frame %d: %v", i, err)
		}
	}

	report := eval.Results(*globalSort)

	log.Printf("Total ground truth objects: %d\n", report.Results[0].GroundTruth)

	for _, res := range report.Results {
		log.Printf("The Average Precision at IoU %.2f is %.2f\n",
			res.Threshold, res.AP)
	}

	// render the final frame's boxes on a bird's eye view surface
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(32, 32, 32, 0),
		SurfaceSize, SurfaceSize, gocv.MatTypeCV8UC3)
	defer img.Close()

	last := frames[len(frames)-1]

	render.Boxes3D(&img, last.gt, render.Green, 2)
	render.Boxes3D(&img, last.boxes, render.Red, 1)

	// overlay the AP summary text
	for i, res := range report.Results {
		text := fmt.Sprintf("AP@%.2f = %.2f", res.Threshold, res.AP)
		pos := image.Pt(10, 24+i*24)

		if *fontFile != "" {
			err := putTTFText(&img, text, pos, *fontFile)

			if err != nil {
				log.Fatal("Error rendering TTF text: ", err)
			}

		} else {
			render.Label(&img, text, pos, render.DefaultFont())
		}
	}

	if ok := gocv.IMWrite(*saveFile, img); !ok {
		log.Fatal("Failed to save the image to: ", *saveFile)
	}

	log.Println("Saved rendered evaluation to:", *saveFile)
}

// makeFrames builds a small synthetic dataset of oriented ground truth
// boxes with predicted boxes jittered around them, plus the occasional
// spurious prediction
func makeFrames() []frame {

	return []frame{
		{
			gt: detmetrics.FrameGroundTruth{
				makeBox(160, 200, 80, 40, 0.3),
				makeBox(420, 300, 90, 45, -0.6),
			},
			boxes: []detmetrics.Box{
				makeBox(164, 204, 80, 40, 0.3),
				makeBox(416, 296, 90, 45, -0.55),
				makeBox(520, 120, 60, 30, 1.1),
			},
			scores: []float64{0.92, 0.85, 0.40},
		},
		{
			gt: detmetrics.FrameGroundTruth{
				makeBox(240, 420, 85, 42, 1.2),
			},
			boxes: []detmetrics.Box{
				makeBox(244, 424, 85, 42, 1.25),
			},
			scores: []float64{0.77},
		},
		{
			gt: detmetrics.FrameGroundTruth{
				makeBox(320, 180, 75, 38, 0.0),
				makeBox(140, 460, 95, 48, 2.1),
			},
			boxes: []detmetrics.Box{
				makeBox(324, 176, 75, 38, 0.05),
				makeBox(260, 520, 95, 48, 2.1),
			},
			scores: []float64{0.88, 0.61},
		},
	}
}

// makeBox builds an 8 corner box centered at cx,cy with the given ground
// plane dimensions and rotation angle in radians.  The first four corners
// are the ground face, the last four sit above them
func makeBox(cx, cy, w, h, angle float64) detmetrics.Box {

	aCos := math.Cos(angle)
	aSin := math.Sin(angle)

	cornersX := []float64{-w / 2, -w / 2, w / 2, w / 2}
	cornersY := []float64{-h / 2, h / 2, h / 2, -h / 2}

	box := make(detmetrics.Box, 8)

	for i := 0; i < 4; i++ {
		x := aCos*cornersX[i] - aSin*cornersY[i] + cx
		y := aSin*cornersX[i] + aCos*cornersY[i] + cy

		box[i] = detmetrics.Point{X: x, Y: y}
		// back face corners are offset to fake a perspective view of the
		// cuboid on the flat surface
		box[i+4] = detmetrics.Point{X: x - 8, Y: y - 8, Z: 1}
	}

	return box
}

// putTTFText renders a line of text onto the Mat using a TTF font file
func putTTFText(img *gocv.Mat, text string, pos image.Point, fontFile string) error {

	fontBytes, err := os.ReadFile(fontFile)

	if err != nil {
		return fmt.Errorf("failed to read font file: %w", err)
	}

	f, err := opentype.Parse(fontBytes)

	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}

	// create a type face
	fontFace, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    TTFFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return fmt.Errorf("failed to create type face: %w", err)
	}

	// create image with text writing
	rgba := image.NewRGBA(image.Rect(0, 0, img.Cols(), img.Rows()))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0}), image.Point{}, draw.Src)

	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: fontFace,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(pos.X * 64),
			Y: fixed.Int26_6(pos.Y * 64),
		},
	}
	dr.DrawString(text)

	// convert image.RGBA to gocv.Mat
	imgRGBA, err := gocv.NewMatFromBytes(rgba.Bounds().Dy(), rgba.Bounds().Dx(), gocv.MatTypeCV8UC4, rgba.Pix)

	if imgRGBA.Empty() || err != nil {
		return fmt.Errorf("error creating Mat from RGBA")
	}

	defer imgRGBA.Close()

	gocv.CvtColor(imgRGBA, &imgRGBA, gocv.ColorRGBAToBGR)
	gocv.AddWeighted(*img, 1.0, imgRGBA, 1.0, 0, img)

	return nil
}
