package main

import (
	"fmt"

	"github.com/reshetovitsme/group-moderator-bot/internal/di"
	chatService "github.com/reshetovitsme/group-moderator-bot/internal/modules/chat/service"
	pollService "github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/service"
	scheduleDomain "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/domain"
	scheduleService "github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/service"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/config"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/storage"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print a summary of the persisted state without connecting",
		RunE: func(cmd *cobra.Command, args []string) error {
			injector, err := di.Setup()
			if err != nil {
				return err
			}
			defer func() {
				if backend, err := do.Invoke[storage.Backend](injector); err == nil {
					backend.Close()
				}
			}()

			cfg, err := do.Invoke[*config.Config](injector)
			if err != nil {
				return err
			}
			setupLogger("error")

			chats, err := do.Invoke[*chatService.Service](injector)
			if err != nil {
				return err
			}
			schedule := do.MustInvoke[*scheduleService.Service](injector)
			polls := do.MustInvoke[*pollService.Service](injector)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "storage:            %s (%s)\n", cfg.StorageBackend, cfg.StoragePath)
			fmt.Fprintf(out, "chats:              %d\n", chats.Count())
			fmt.Fprintf(out, "scheduled messages: %d\n", schedule.Count(scheduleDomain.ItemKindMessage))
			fmt.Fprintf(out, "reminders:          %d\n", schedule.Count(scheduleDomain.ItemKindReminder))
			fmt.Fprintf(out, "polls:              %d\n", polls.Count())

			for _, id := range chats.ChatIDs() {
				c := chats.Get(id)
				fmt.Fprintf(out, "  %s: members tracked %d, muted %d, anti-spam %t, link filter %t\n",
					id, len(c.LastActivity), len(c.MutedUsers), c.AntiSpam, c.LinkFilter)
			}
			return nil
		},
	}
}
