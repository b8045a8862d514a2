package api

import (
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/timefont/glyphtx/stream"
)

// Api serves a live preview of the composited widget over HTTP, so
// the animation can be checked without a glyphrx device attached.
type Api struct {
	anim stream.Animation
}

// NewApi creates an Api previewing the given animation.
func NewApi(anim stream.Animation) *Api {
	a := new(Api)
	a.anim = anim
	return a
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	f := a.anim.CalculateFrame(time.Now())
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, f.Image()); err != nil {
		log.Println(err)
	}
}

func (a *Api) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(`<html><body style="background:#111">` +
		`<img src="/frame.png" onload="setTimeout(()=>this.src='/frame.png?'+Date.now(),125)">` +
		`</body></html>`))
}

// Serve blocks serving the preview endpoints.
func (a *Api) Serve(addr string) {
	http.HandleFunc("/frame.png", a.handleFrame)
	http.HandleFunc("/", a.handleIndex)

	log.Println("Listening...")
	http.ListenAndServe(addr, nil)
}
