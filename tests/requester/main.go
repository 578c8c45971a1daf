package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

// token must be an HS256 bearer token for a seeded user, signed with JWT_SECRET.
var token = os.Getenv("SHOPPY_TOKEN")

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(checkout)
			wg.Go(browse)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func checkout() {
	var cart struct {
		ID string `json:"id"`
	}
	if !call(http.MethodPost, "/carts", nil, &cart) {
		return
	}

	for range rand.Intn(3) + 1 {
		item := map[string]int{"product_id": rand.Intn(3) + 1, "quantity": rand.Intn(3) + 1}
		if !call(http.MethodPost, "/carts/"+cart.ID+"/items", item, nil) {
			return
		}
	}

	call(http.MethodPost, "/orders", map[string]string{"cart_id": cart.ID}, nil)
}

func browse() {
	path := fmt.Sprintf("/orders/%d", rand.Intn(20)+1)
	if rand.Intn(2) == 0 {
		path = "/products?ordering=-price&limit=5"
	}
	call(http.MethodGet, path, nil, nil)
}

func call(method, path string, body, dst any) bool {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		fmt.Println("request error:", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request error:", err)
		return false
	}
	defer resp.Body.Close()

	fmt.Println(method, path, "->", resp.Status)
	if dst != nil && resp.StatusCode < 300 {
		json.NewDecoder(resp.Body).Decode(dst)
	}
	return resp.StatusCode < 300
}
