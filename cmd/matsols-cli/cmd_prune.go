package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsols/matsols-api/internal/domain/chat"
	chatrepo "github.com/matsols/matsols-api/internal/infrastructure/repository/chat"
	"github.com/matsols/matsols-api/internal/infrastructure/retention"
)

var pruneChatCmd = &cobra.Command{
	Use:   "prune-chat",
	Short: "Delete old chat messages",
	Long:  `Delete stored chat messages older than --older-than, or CHAT_RETENTION when the flag is not set.`,
	RunE:  runPruneChat,
}

func init() {
	pruneChatCmd.Flags().Duration("older-than", 0, "Retention window, e.g. 720h")
}

func runPruneChat(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.Close()

	window := rt.cfg.ChatRetention
	if cmd.Flags().Changed("older-than") {
		window, _ = cmd.Flags().GetDuration("older-than")
	}
	if window <= 0 {
		return errors.New("retention window must be positive; set --older-than or CHAT_RETENTION")
	}

	svc := chat.NewService(chatrepo.NewChatRepository(rt.db), rt.log)
	removed, err := retention.NewScheduler(svc, nil, window, rt.cfg.ChatPruneSchedule, rt.log).RunOnce(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("removed %d chat messages\n", removed)
	return nil
}
