package app

import "net/http"

func fetch() {
	resp, err := http.Get("http://localhost:8000/my-urls") // want `direct net/http call bypasses the request gateway`
	if err != nil {
		return
	}
	defer resp.Body.Close()

	_ = http.DefaultClient // want `direct net/http call bypasses the request gateway`
}

func serve() {
	// Serving is fine; only the package-level client is gated.
	_ = http.ListenAndServe("localhost:3000", nil)
}
