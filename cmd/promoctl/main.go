package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/QuangTung97/promo-delivery/config"
	"github.com/QuangTung97/promo-delivery/model"
	"github.com/QuangTung97/promo-delivery/pkg/memtable"
	"github.com/QuangTung97/promo-delivery/pkg/otellib"
	"github.com/QuangTung97/promo-delivery/pkg/transport"
	"github.com/QuangTung97/promo-delivery/repository"
	"github.com/QuangTung97/promo-delivery/service/promotion"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "promoctl",
	}
	rootCmd.AddCommand(
		runTriggersCommand(),
		drainCommand(),
		expireCommand(),
		seedCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

type deps struct {
	conf     config.Config
	logger   *zap.Logger
	provider repository.Provider
	options  []promotion.Option
}

func newDeps() deps {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	db := conf.MySQL.MustConnect(logger)

	return deps{
		conf:     conf,
		logger:   logger,
		provider: repository.NewProvider(db),
		options: []promotion.Option{
			promotion.WithRenderOptions(promotion.RenderOptions{
				BusinessName:  conf.Promotion.BusinessName,
				PortalBaseURL: conf.Promotion.PortalBaseURL,
			}),
			promotion.WithRunLeaseTTL(conf.Scheduler.RunLeaseTimeout),
			promotion.WithMaxDeliveryAttempts(conf.Scheduler.MaxDeliveryAttempts),
		},
	}
}

func (d deps) context() context.Context {
	return otellib.ToContext(context.Background(), d.logger)
}

func (d deps) newDeliverer() promotion.IDeliverer {
	prefCache := memtable.New(d.conf.PreferenceCache.SizeBytes, d.conf.PreferenceCache.Expiration)
	preference := promotion.NewPreferenceChecker(d.provider, repository.NewPreference(), prefCache)

	return promotion.NewDeliverer(
		d.provider, repository.NewDelivery(), preference,
		transport.NewEmailClient(d.conf.Email), transport.NewSMSClient(d.conf.SMS),
		d.options...,
	)
}

func runTriggersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run-triggers",
		Short: "evaluate every active trigger once",
		Run: func(cmd *cobra.Command, args []string) {
			d := newDeps()

			triggerRepo := repository.NewTrigger()
			queue := promotion.NewBatchQueue(d.provider, repository.NewDelivery(), repository.NewPendingDelivery())
			evaluator := promotion.NewTriggerEvaluator(
				d.provider, repository.NewCohort(), repository.NewPromotion(), triggerRepo, queue, d.options...,
			)
			runner := promotion.NewRunner(d.provider, triggerRepo, evaluator, promotion.NewNoopLocker(), d.options...)

			result := runner.RunAll(d.context())

			fmt.Println("RUN ID:", result.RunID)
			fmt.Println("SUCCESS:", result.Success)
			for _, r := range result.Results {
				fmt.Printf("  [%d] %s (%s): found=%d created=%d queued=%d errors=%v\n",
					r.TriggerID, r.TriggerName, r.TriggerType,
					r.CustomersFound, r.PromotionsCreated, r.DeliveriesQueued, r.Errors,
				)
			}
			for _, e := range result.Errors {
				fmt.Println("ERROR:", e)
			}
		},
	}
}

func drainCommand() *cobra.Command {
	var shards int
	var limit uint64

	cmd := &cobra.Command{
		Use:   "drain",
		Short: "deliver pending delivery intents",
		Run: func(cmd *cobra.Command, args []string) {
			d := newDeps()
			if limit == 0 {
				limit = d.conf.Scheduler.DrainBatchSize
			}

			worker := promotion.NewWorker(
				d.provider, repository.NewPendingDelivery(), repository.NewPromotion(), repository.NewCustomer(),
				d.newDeliverer(), d.options...,
			)

			for i, hashRange := range repository.SplitHashRange(shards) {
				result, err := worker.Drain(d.context(), hashRange, limit)
				if err != nil {
					fmt.Println("SHARD", i, "ERROR:", err)
					continue
				}
				fmt.Printf("SHARD %d: processed=%d sent=%d failed=%d skipped=%d retried=%d\n",
					i, result.Processed, result.Sent, result.Failed, result.Skipped, result.Retried)
			}
		},
	}

	cmd.Flags().IntVar(&shards, "shards", 1, "number of hash ranges to drain one after another")
	cmd.Flags().Uint64Var(&limit, "limit", 0, "max intents per hash range, defaults to scheduler.drain_batch_size")
	return cmd
}

func expireCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expire",
		Short: "mark promotions past their validity window as expired",
		Run: func(cmd *cobra.Command, args []string) {
			d := newDeps()
			expirer := promotion.NewExpirer(d.provider, repository.NewPromotion(), d.options...)

			affected, err := expirer.ExpirePromotions(d.context())
			if err != nil {
				panic(err)
			}
			fmt.Println("EXPIRED:", affected)
		},
	}
}

func intPtr(v int) *int {
	return &v
}

func decimalPtr(v decimal.Decimal) *decimal.Decimal {
	return &v
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "insert sample customers, preferences and triggers",
		Run: func(cmd *cobra.Command, args []string) {
			d := newDeps()

			customerRepo := repository.NewCustomer()
			preferenceRepo := repository.NewPreference()
			triggerRepo := repository.NewTrigger()

			now := time.Now().UTC()

			err := d.provider.Transact(d.context(), func(ctx context.Context) error {
				err := customerRepo.UpsertCustomer(ctx, model.Customer{
					ID:             "customer-01",
					Email:          sql.NullString{Valid: true, String: "jane@example.com"},
					Phone:          sql.NullString{Valid: true, String: "+15550001111"},
					DisplayName:    "Jane Doe",
					Birthday:       sql.NullTime{Valid: true, Time: now.AddDate(-30, 0, 3)},
					CustomerSince:  sql.NullTime{Valid: true, Time: now.AddDate(-2, 0, 0)},
					LifetimeValue:  decimal.NewFromInt(2500),
					LastActivityAt: sql.NullTime{Valid: true, Time: now.AddDate(0, -8, 0)},
				})
				if err != nil {
					return err
				}

				err = customerRepo.UpsertCustomer(ctx, model.Customer{
					ID:             "customer-02",
					Email:          sql.NullString{Valid: true, String: "john@example.com"},
					DisplayName:    "John Smith",
					CustomerSince:  sql.NullTime{Valid: true, Time: now.AddDate(0, -3, 0)},
					LifetimeValue:  decimal.NewFromInt(120),
					LastActivityAt: sql.NullTime{Valid: true, Time: now.AddDate(0, 0, -2)},
				})
				if err != nil {
					return err
				}

				err = preferenceRepo.UpsertPreference(ctx, model.CommunicationPreference{
					CustomerID: "customer-02",
					Channel:    model.DeliveryChannelSMS,
					Category:   model.PreferenceCategoryAll,
					OptedOut:   true,
				})
				if err != nil {
					return err
				}

				_, err = triggerRepo.UpsertTrigger(ctx, model.Trigger{
					ID:          1,
					Name:        "Win back inactive customers",
					TriggerType: model.TriggerTypeInactiveCustomer,
					Conditions: model.TriggerConditions{
						DaysInactive: intPtr(180),
					},
					Template: model.PromotionTemplate{
						Title:           "We Miss You",
						DiscountType:    model.DiscountTypePercentage,
						DiscountPercent: decimalPtr(decimal.NewFromInt(15)),
						ValidDays:       30,
					},
					DeliveryChannels: model.DeliveryChannels{model.DeliveryChannelEmail},
					Active:           true,
				})
				if err != nil {
					return err
				}

				_, err = triggerRepo.UpsertTrigger(ctx, model.Trigger{
					ID:          2,
					Name:        "Happy birthday",
					TriggerType: model.TriggerTypeBirthday,
					Conditions: model.TriggerConditions{
						DaysAhead: intPtr(7),
					},
					Template: model.PromotionTemplate{
						Title:         "Happy Birthday",
						DiscountType:  model.DiscountTypeValue,
						DiscountValue: decimalPtr(decimal.NewFromInt(25)),
						ValidDays:     14,
					},
					Active: true,
				})
				if err != nil {
					return err
				}

				_, err = triggerRepo.UpsertTrigger(ctx, model.Trigger{
					ID:          3,
					Name:        "VIP thank you",
					TriggerType: model.TriggerTypeHighValue,
					Conditions: model.TriggerConditions{
						MinLifetimeValue: decimalPtr(decimal.NewFromInt(1000)),
					},
					Template: model.PromotionTemplate{
						Title:        "Thank You",
						DiscountType: model.DiscountTypeFreeAddon,
						FreeAddon:    "Priority Support Upgrade",
					},
					Active: true,
				})
				return err
			})
			if err != nil {
				panic(err)
			}
			fmt.Println("SEEDED")
		},
	}
}
