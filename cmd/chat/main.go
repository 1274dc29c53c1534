package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/interview-fever/internal/config"
	"alfredoptarigan/interview-fever/internal/models"
	"alfredoptarigan/interview-fever/internal/services"
)

const quitCommand = "/quit"

var (
	resumePath string
	email      string
	company    string

	rootCmd = &cobra.Command{
		Use:   "interview-chat",
		Short: "Run a mock technical interview in the terminal, driven by your PDF resume",
		RunE:  run,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&resumePath, "resume", "r", "", "path to your resume (PDF)")
	rootCmd.Flags().StringVarP(&email, "email", "e", "", "your email address")
	rootCmd.Flags().StringVarP(&company, "company", "c", "", "target company ("+strings.Join(models.Companies, ", ")+")")
	_ = rootCmd.MarkFlagRequired("resume")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	// Keep the terminal readable unless debugging was asked for.
	cfg.Log.Debug = cfg.Log.Debug && os.Getenv("LOG_DEBUG") != ""

	zl, err := config.InitLogger(cfg)
	if err != nil {
		return err
	}
	defer zl.Sync()
	if !cfg.Log.Debug {
		zl = zap.NewNop()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	chatModel, err := services.NewChatModel(ctx, services.ChatModelConfig{
		Provider:    cfg.LLM.Provider,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
	}, zl)
	if err != nil {
		return fmt.Errorf("initialize chat model: %w", err)
	}

	ingestion := services.NewIngestionService(
		services.NewPDFParserService(zl),
		cfg.Ingestion.MaxFileSize,
		cfg.Ingestion.MinResumeChars,
		nil,
		zl,
	)
	interview := services.NewInterviewService(
		ingestion,
		chatModel,
		services.NewCompletionDetector(cfg.Interview.CompletionPhrases),
		cfg.LLM.ContextTokens,
		nil,
		zl,
	)

	if email == "" {
		if email, err = promptEmail(); err != nil {
			return err
		}
	}
	if company == "" {
		if company, err = promptCompany(); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}

	sess := models.NewSession(time.Now())
	fmt.Println("📄 Analyzing resume...")
	if _, err := interview.Start(sess, email, company, data, int64(len(data))); err != nil {
		return userError(err)
	}

	fmt.Printf("✅ Resume accepted. Interviewing for %s.\n", sess.Profile.Company)
	fmt.Println("Type `hello` or `Let's Start` to start the interview. Type /quit to leave.")

	return converse(ctx, interview, sess)
}

func converse(ctx context.Context, interview services.InterviewService, sess *models.Session) error {
	answerPrompt := promptui.Prompt{Label: "You"}

	for !sess.Complete() {
		var (
			reply *models.ConversationTurn
			err   error
		)

		if sess.PendingTurn() != nil {
			retry := promptui.Prompt{Label: "The interviewer did not answer. Retry", IsConfirm: true}
			if _, err := retry.Run(); err != nil {
				return nil
			}
			reply, err = interview.Retry(ctx, sess)
		} else {
			answer, perr := answerPrompt.Run()
			if perr != nil {
				return nil
			}
			if strings.TrimSpace(answer) == quitCommand {
				return nil
			}
			reply, err = interview.Submit(ctx, sess, answer)
		}

		if err != nil {
			if services.IsKind(err, services.KindBlankAnswer) {
				continue
			}
			fmt.Fprintln(os.Stderr, "❌", userError(err))
			continue
		}

		fmt.Printf("\n🧑‍💼 %s\n\n", reply.Content)
		fmt.Printf("Progress: %d%%\n", sess.Progress())
	}

	switch sess.Outcome {
	case models.OutcomeAccepted:
		fmt.Println("🎉 Congratulations! You are selected.")
	case models.OutcomeRejected:
		fmt.Println("Thanks for interviewing. You were not selected this time.")
	}
	return nil
}

func promptEmail() (string, error) {
	prompt := promptui.Prompt{
		Label: "📧 Email",
		Validate: func(input string) error {
			if !services.IsValidEmail(strings.TrimSpace(input)) {
				return errors.New("please enter a valid email address")
			}
			return nil
		},
	}
	value, err := prompt.Run()
	return strings.TrimSpace(value), err
}

func promptCompany() (string, error) {
	sel := promptui.Select{
		Label: "Choose the Company",
		Items: models.Companies,
	}
	_, value, err := sel.Run()
	return value, err
}

func userError(err error) error {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		return errors.New(svcErr.Message)
	}
	return err
}
