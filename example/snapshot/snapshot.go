/*
Example code showing how to render a single pose figure to a PNG image.
*/
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/courtvision/poseviz"
	"github.com/courtvision/poseviz/render"
	"github.com/courtvision/poseviz/skeleton"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	mode := flag.String("m", "analysis", "Render mode [analysis|demo]")
	drill := flag.String("d", "athletic_stance", "Demo drill [hip_drive|low_contact|arm_extension|athletic_stance]")
	at := flag.Float64("t", 1500, "Animation time in milliseconds to render the figure at")
	shoulder := flag.Float64("shoulder", 0, "Shoulder overuse score 0-100")
	chain := flag.Float64("chain", 0, "Kinetic chain score 0-100")
	knee := flag.Float64("knee", 0, "Knee stress score 0-100")
	scale := flag.Int("s", 4, "Pixels per viewport unit")
	saveFile := flag.String("o", "figure.png", "Output PNG file")

	flag.Parse()

	in := poseviz.Input{
		Mode:  poseviz.Mode(*mode),
		Drill: skeleton.Drill(*drill),
		Risk: poseviz.RiskVector{
			ShoulderOveruse:  *shoulder,
			PoorKineticChain: *chain,
			KneeStress:       *knee,
		},
	}

	frame := poseviz.Render(*at, in)

	style := render.DefaultStyle()
	style.Scale = *scale

	img := render.Image(frame, style)

	f, err := os.Create(*saveFile)

	if err != nil {
		log.Fatal("Error creating output file: ", err)
	}

	defer f.Close()

	err = png.Encode(f, img)

	if err != nil {
		log.Fatal("Error encoding PNG: ", err)
	}

	log.Printf("Saved figure to %s\n", *saveFile)
	log.Println("done")
}
