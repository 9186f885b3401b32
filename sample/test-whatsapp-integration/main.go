package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/urbancode/chatbot-relay/internal/entity"
	"github.com/urbancode/chatbot-relay/internal/infra/integration/whatsapp"
	"github.com/urbancode/chatbot-relay/internal/usecase"
)

// Sends one test template to every WHATSAPP_NOTIFICATION_NUMBER using the .env
// credentials, the same way a real submission would.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	if os.Getenv("ASKEVA_API_URL") == "" || os.Getenv("ASKEVA_API_TOKEN") == "" {
		log.Fatal("ASKEVA_API_URL and ASKEVA_API_TOKEN must be set")
	}

	numbers := usecase.ParseWhatsAppNumbers(os.Getenv("WHATSAPP_NOTIFICATION_NUMBER"))
	if len(numbers) == 0 {
		log.Fatal("WHATSAPP_NOTIFICATION_NUMBER must list at least one number")
	}

	client := whatsapp.NewClient(os.Getenv("ASKEVA_API_URL"), os.Getenv("ASKEVA_API_TOKEN"))
	lead := entity.NewLead("Test Lead", "test.lead@example.com", "Data Science", "9876543210")

	fmt.Println("Sending test template...")
	fmt.Printf("   Name:   %s\n", lead.Name)
	fmt.Printf("   Email:  %s\n", lead.Email)
	fmt.Printf("   Course: %s\n", lead.Course)
	fmt.Printf("   Phone:  %s\n\n", lead.Phone)

	failed := 0
	for _, n := range numbers {
		to := usecase.NormalizePhone(n)
		outcome := client.SendLeadTemplate(context.Background(), to, lead)
		fmt.Printf("%s: %s (%s)\n", to, outcome.Status, outcome.Detail)
		if outcome.MessageID != "" {
			fmt.Printf("   message id: %s\n", outcome.MessageID)
		}
		if outcome.Status == entity.StatusError {
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
