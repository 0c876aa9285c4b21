/*
Example code showing how to render the pose animation to a video file.
*/
package main

import (
	"flag"
	"log"

	"gocv.io/x/gocv"

	"github.com/courtvision/poseviz"
	"github.com/courtvision/poseviz/render"
	"github.com/courtvision/poseviz/skeleton"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	mode := flag.String("m", "demo", "Render mode [analysis|demo]")
	drill := flag.String("d", "hip_drive", "Demo drill [hip_drive|low_contact|arm_extension|athletic_stance]")
	shoulder := flag.Float64("shoulder", 0, "Shoulder overuse score 0-100")
	chain := flag.Float64("chain", 0, "Kinetic chain score 0-100")
	knee := flag.Float64("knee", 0, "Knee stress score 0-100")
	fps := flag.Int("f", 30, "Frames per second of the output video")
	duration := flag.Float64("l", 9, "Length of the output video in seconds")
	scale := flag.Int("s", 4, "Pixels per viewport unit")
	saveFile := flag.String("o", "figure.mp4", "Output MP4 file")

	flag.Parse()

	style := render.DefaultStyle()
	style.Scale = *scale

	width := int(poseviz.ViewportWidth) * *scale
	height := int(poseviz.ViewportHeight) * *scale

	writer, err := gocv.VideoWriterFile(*saveFile, "avc1", float64(*fps),
		width, height, true)

	if err != nil {
		log.Fatal("Error opening video writer: ", err)
	}

	defer writer.Close()

	img := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	defer img.Close()

	in := poseviz.Input{
		Mode:  poseviz.Mode(*mode),
		Drill: skeleton.Drill(*drill),
		Risk: poseviz.RiskVector{
			ShoulderOveruse:  *shoulder,
			PoorKineticChain: *chain,
			KneeStress:       *knee,
		},
	}

	frames := int(*duration * float64(*fps))

	for i := 0; i < frames; i++ {
		// animation time of this frame in milliseconds
		t := float64(i) * 1000.0 / float64(*fps)

		render.Figure(&img, poseviz.Render(t, in), style)

		err = writer.Write(img)

		if err != nil {
			log.Fatal("Error writing video frame: ", err)
		}
	}

	log.Printf("Wrote %d frames to %s\n", frames, *saveFile)
	log.Println("done")
}
