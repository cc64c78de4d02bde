// Command yoga is a small terminal client for the booking API: it logs in,
// lists the available sessions, and optionally books one.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/hisarandre/P5-yoga-app/internal/client/controller"
	"github.com/hisarandre/P5-yoga-app/internal/client/gateway"
	"github.com/hisarandre/P5-yoga-app/internal/client/session"
	"github.com/hisarandre/P5-yoga-app/internal/config"
)

// terminalUI renders notifications and navigation signals as plain lines.
type terminalUI struct{}

func (terminalUI) Notify(message string) {
	fmt.Println(message)
}

func (terminalUI) NavigateTo(path string) {
	fmt.Printf("-> %s\n", path)
}

func main() {
	log.Fatal(run())
}

func run() error {
	cfg := config.Load()

	baseURL := flag.String("api", cfg.APIBaseURL, "Base URL of the booking API")
	email := flag.String("email", "yoga@studio.com", "Account email")
	password := flag.String("password", "test!1234", "Account password")
	book := flag.Int64("book", 0, "Session id to participate in (0 to skip)")
	flag.Parse()

	ctx := context.Background()
	store := session.NewStore()
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	gateways, err := gateway.New(httpClient, *baseURL, store)
	if err != nil {
		return err
	}

	ui := terminalUI{}
	authFlow := controller.NewAuth(store, gateways.Auth, ui)
	authFlow.Login(ctx, *email, *password)
	if authFlow.OnError() {
		return fmt.Errorf("login failed for %s", *email)
	}
	info, _ := store.Information()
	fmt.Printf("logged in as %s %s (admin=%v)\n", info.FirstName, info.LastName, info.Admin)

	sessions, err := gateways.Session.All(ctx)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		fmt.Printf("#%d %s on %s (%d attendees)\n", s.ID, s.Name, s.Date.Format("2006-01-02"), len(s.Users))
	}

	if *book == 0 {
		return nil
	}

	detail := controller.NewDetail(store, gateways.Session, gateways.Teacher, ui, ui, *book)
	detail.Load(ctx)
	s, ok := detail.Session()
	if !ok {
		return fmt.Errorf("session %d could not be loaded", *book)
	}
	teacher, _ := detail.Teacher()
	fmt.Printf("session %q with %s %s, participating=%v\n", s.Name, teacher.FirstName, teacher.LastName, detail.IsParticipating())

	if detail.IsParticipating() {
		detail.Unparticipate(ctx)
	} else {
		detail.Participate(ctx)
	}
	fmt.Printf("participating=%v\n", detail.IsParticipating())
	return nil
}
