package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"liyu1981.xyz/inventory-alert-service/pkg/alerts"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/db"
	"liyu1981.xyz/inventory-alert-service/pkg/events"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

var maxProducts = flag.Int("products", 1000, "number of products to seed")
var lotsPerProduct = flag.Int("lots", 3, "lots per product")
var readers = flag.Int("readers", 50, "concurrent list queries")
var dbPath = flag.String("db", "", "sqlite file to use instead of an in-memory database")

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	flag.Parse()

	dialector := db.UseNamedMemorySqliteDialector("reconcile1k")
	if *dbPath != "" {
		dialector = db.UseSqliteFileDialector(*dbPath)
	}
	dbInstance, err := db.Open(dialector)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}

	alertsCore := alerts.Alerts{
		Db:    *dbInstance,
		Bus:   events.NewBus(),
		Clock: common.RealClock{},
	}
	alertsCore.WithDefaultServices()

	sub := alertsCore.Bus.Subscribe(*maxProducts * (*lotsPerProduct + 1))
	defer alertsCore.Bus.Unsubscribe(sub)

	startTime := time.Now()
	productIDs := seed(dbInstance)
	usedTime := time.Since(startTime)
	fmt.Printf(
		"seeded %v products with %v lots each: used time=%v seconds\n",
		*maxProducts, *lotsPerProduct, usedTime.Seconds(),
	)

	ctx := context.Background()

	timePass(ctx, &alertsCore, "initial pass")

	for range *maxProducts / 4 {
		id := productIDs[rnd.Intn(len(productIDs))]
		if err := dbInstance.Conn.Model(&models.Product{}).Where("id = ?", id).
			Update("stock_actual", rnd.Intn(20)).Error; err != nil {
			log.Fatal("Failed to update stock: ", err)
		}
	}
	timePass(ctx, &alertsCore, "pass after stock changes")

	timePass(ctx, &alertsCore, "idle pass")

	fmt.Printf("events published: %v, dropped: %v\n", len(sub.C), sub.Dropped())

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range *readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := alertsCore.Query.GetAlerts(ctx, models.QueryParams{Page: i%5 + 1}); err != nil {
				fmt.Printf("\nerror: %v\n", err)
			}
			fmt.Printf("\rexecuted query %v", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rran %v concurrent queries: used time=%v seconds, throughput=%v query/second\n",
		*readers, usedTime.Seconds(), float64(*readers)/usedTime.Seconds(),
	)
}

func seed(dbInstance *db.DB) []uint {
	now := time.Now().UTC()
	productIDs := make([]uint, 0, *maxProducts)

	for i := range *maxProducts {
		product := models.Product{
			Name:        "bench-" + uuid.NewString(),
			StockActual: rnd.Intn(30),
			StockMinimo: 1 + rnd.Intn(15),
		}
		if err := dbInstance.Conn.Create(&product).Error; err != nil {
			log.Fatal("Failed to seed product: ", err)
		}
		productIDs = append(productIDs, product.ID)

		lots := make([]models.Lot, *lotsPerProduct)
		for j := range lots {
			lots[j] = models.Lot{
				ProductID: product.ID,
				Quantity:  rnd.Intn(50),
				ExpiresAt: now.Add(time.Duration(rnd.Intn(120)-10) * 24 * time.Hour),
			}
		}
		if len(lots) > 0 {
			if err := dbInstance.Conn.Omit("Product").Create(&lots).Error; err != nil {
				log.Fatal("Failed to seed lots: ", err)
			}
		}
		fmt.Printf("\rseeded product %v", i)
	}
	fmt.Print("\r")
	return productIDs
}

func timePass(ctx context.Context, alertsCore *alerts.Alerts, name string) {
	startTime := time.Now()
	report, err := alertsCore.Reconciler.SyncAllAlerts(ctx, models.SyncOptions{
		Source: models.SyncSourceManual,
		Emit:   true,
	})
	if err != nil {
		log.Fatal("Reconciliation failed: ", err)
	}
	usedTime := time.Since(startTime)

	fmt.Printf(
		"%v: created=%v updated=%v resolved=%v, used time=%v seconds\n",
		name, len(report.Created), len(report.Updated), len(report.Resolved), usedTime.Seconds(),
	)
}
