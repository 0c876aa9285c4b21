/*
Example code showing how to serve the animated figure to browsers, over
websocket for dashboard clients and as an MJPEG preview stream.
*/
package main

import (
	"flag"
	"fmt"
	"image/jpeg"
	"log"
	"net/http"
	"time"

	"github.com/courtvision/poseviz"
	"github.com/courtvision/poseviz/render"
	"github.com/courtvision/poseviz/skeleton"
	"github.com/courtvision/poseviz/stream"
)

// Preview is the HTTP handler used to stream rendered JPEG frames to a
// browser without any client side code
type Preview struct {
	style render.Style
	fps   int
	in    poseviz.Input
}

// ServeHTTP streams the figure as multipart JPEG frames
func (p *Preview) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	log.Printf("New preview connection established\n")

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")

	interval := time.Duration(float64(time.Second) / float64(p.fps))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-r.Context().Done():
			log.Printf("Preview client disconnected\n")
			return

		case now := <-ticker.C:

			// animation time for this client in milliseconds
			t := float64(now.Sub(start)) / float64(time.Millisecond)

			img := render.Image(poseviz.Render(t, p.in), p.style)

			// write the image to the response writer
			w.Write([]byte("--frame\r\n"))
			w.Write([]byte("Content-Type: image/jpeg\r\n\r\n"))

			if err := jpeg.Encode(w, img, nil); err != nil {
				log.Printf("Error encoding frame: %v", err)
				return
			}

			w.Write([]byte("\r\n"))

			// flush the buffer
			flusher, ok := w.(http.Flusher)
			if ok {
				flusher.Flush()
			}
		}
	}
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	httpAddr := flag.String("a", "localhost:8080", "HTTP Address to run server on, format address:port")
	fps := flag.Int("f", 30, "Frames per second to push to each client")
	mode := flag.String("m", "analysis", "Render mode of the MJPEG preview [analysis|demo]")
	drill := flag.String("d", "athletic_stance", "Demo drill of the MJPEG preview")
	shoulder := flag.Float64("shoulder", 0, "Shoulder overuse score 0-100")
	chain := flag.Float64("chain", 0, "Kinetic chain score 0-100")
	knee := flag.Float64("knee", 0, "Knee stress score 0-100")
	scale := flag.Int("s", 4, "Pixels per viewport unit for the MJPEG preview")

	flag.Parse()

	cfg := stream.DefaultConfig()
	cfg.FPS = *fps

	feed := stream.NewServer(cfg)
	defer feed.Close()

	style := render.DefaultStyle()
	style.Scale = *scale

	preview := &Preview{
		style: style,
		fps:   *fps,
		in: poseviz.Input{
			Mode:  poseviz.Mode(*mode),
			Drill: skeleton.Drill(*drill),
			Risk: poseviz.RiskVector{
				ShoulderOveruse:  *shoulder,
				PoorKineticChain: *chain,
				KneeStress:       *knee,
			},
		},
	}

	http.Handle("/ws", feed)
	http.Handle("/preview", preview)

	log.Println(fmt.Sprintf("Open browser and view the figure at http://%s/preview",
		*httpAddr))
	log.Println(fmt.Sprintf("Connect dashboard clients to the frame feed at ws://%s/ws",
		*httpAddr))

	log.Fatal(http.ListenAndServe(*httpAddr, nil))
}
