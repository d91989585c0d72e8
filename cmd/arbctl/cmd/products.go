package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	apiclient "arbitrack/internal/api/client"
	domain "arbitrack/pkg/types"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Manage products and offers",
		Long: "Manage the product catalog and import Amazon and retail offer\n" +
			"observations for scoring.",
	}

	productsRoot.AddCommand(
		productListCmd(),
		productGetCmd(),
		productAddCmd(),
		productOffersCmd(),
		productImportAmazonCmd(),
		productImportRetailCmd(),
	)

	return productsRoot
}

func productListCmd() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Example: `  arbctl products list
  arbctl products list --limit 100 --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			page, err := c.ListProducts(context.Background(), limit, offset)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(page)
			}
			if len(page.Products) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			if err := printProductTable(page.Products); err != nil {
				return err
			}
			fmt.Printf("\nShowing %d of %d products.\n", len(page.Products), page.Total)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")

	return cmd
}

func productGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id-or-asin>",
		Short: "Show product details",
		Example: `  arbctl products get B0DEXAMPLE
  arbctl products get 6a1f... --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printProductDetail(p)
		},
	}
}

func productAddCmd() *cobra.Command {
	var (
		asin     string
		title    string
		brand    string
		category string
		imageURL string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or update a product",
		Long: "Add a product to the catalog by ASIN. Re-adding an existing ASIN\n" +
			"updates its metadata in place.",
		Example: `  arbctl products add --asin B0DEXAMPLE --title "Wooden puzzle 500pc"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if asin == "" || title == "" {
				return fmt.Errorf("--asin and --title are required")
			}
			p := &domain.Product{
				ASIN:     asin,
				Title:    title,
				Brand:    brand,
				Category: category,
				ImageURL: imageURL,
			}
			c := newClient()
			created, err := c.UpsertProduct(context.Background(), p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Product saved: %s (%s)\n", created.ASIN, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&asin, "asin", "", "Amazon ASIN (10 characters)")
	cmd.Flags().StringVar(&title, "title", "", "product title")
	cmd.Flags().StringVar(&brand, "brand", "", "brand name")
	cmd.Flags().StringVar(&category, "category", "", "category")
	cmd.Flags().StringVar(&imageURL, "image-url", "", "product image URL")

	return cmd
}

func productOffersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "offers <id-or-asin>",
		Short:   "Show the stored offers for a product",
		Example: `  arbctl products offers B0DEXAMPLE`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}
			offers, err := c.ListOffers(context.Background(), p.ID)
			if err != nil {
				return err
			}
			return outputJSON(offers)
		},
	}
}

func productImportAmazonCmd() *cobra.Command {
	var (
		marketplace  string
		price        string
		shipping     string
		fbaFee       string
		referralFee  string
		sellersCount int
		buyboxStable bool
		bsr          int
	)

	cmd := &cobra.Command{
		Use:   "import-amazon <id-or-asin>",
		Short: "Import an Amazon offer observation",
		Example: `  arbctl products import-amazon B0DEXAMPLE --marketplace FR \
    --price 29.99 --bsr 1200 --sellers 3 --buybox-stable`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &apiclient.AmazonOfferRequest{
				Marketplace:  marketplace,
				SellersCount: sellersCount,
				BuyboxStable: buyboxStable,
			}
			var err error
			if req.Price, err = parseDecimalFlag("price", price, true); err != nil {
				return err
			}
			if req.ShippingCost, err = parseDecimalFlag("shipping", shipping, false); err != nil {
				return err
			}
			if req.FBAFee, err = parseDecimalFlag("fba-fee", fbaFee, false); err != nil {
				return err
			}
			if req.ReferralFee, err = parseDecimalFlag("referral-fee", referralFee, false); err != nil {
				return err
			}
			if cmd.Flags().Changed("bsr") {
				req.BSR = &bsr
			}

			c := newClient()
			p, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}
			o, err := c.ImportAmazonOffer(context.Background(), p.ID, req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(o)
			}
			fmt.Printf("Amazon offer saved for %s on %s.\n", p.ASIN, o.Marketplace)
			return nil
		},
	}
	cmd.Flags().StringVar(&marketplace, "marketplace", "FR", "marketplace code")
	cmd.Flags().StringVar(&price, "price", "", "offer price")
	cmd.Flags().StringVar(&shipping, "shipping", "", "shipping cost")
	cmd.Flags().StringVar(&fbaFee, "fba-fee", "", "FBA fulfilment fee")
	cmd.Flags().StringVar(&referralFee, "referral-fee", "", "referral fee")
	cmd.Flags().IntVar(&sellersCount, "sellers", 0, "competing sellers")
	cmd.Flags().BoolVar(&buyboxStable, "buybox-stable", false, "buybox held by one seller")
	cmd.Flags().IntVar(&bsr, "bsr", 0, "best sellers rank")

	return cmd
}

func productImportRetailCmd() *cobra.Command {
	var (
		storeID     string
		price       string
		shipping    string
		unavailable bool
		offerURL    string
	)

	cmd := &cobra.Command{
		Use:   "import-retail <id-or-asin>",
		Short: "Import a retail offer observation",
		Example: `  arbctl products import-retail B0DEXAMPLE --store abc123 \
    --price 11.99 --url https://www.fnac.com/p/123`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if storeID == "" {
				return fmt.Errorf("--store is required")
			}
			req := &apiclient.RetailOfferRequest{
				StoreID:      storeID,
				Availability: !unavailable,
				URL:          offerURL,
			}
			var err error
			if req.Price, err = parseDecimalFlag("price", price, true); err != nil {
				return err
			}
			if req.ShippingCost, err = parseDecimalFlag("shipping", shipping, false); err != nil {
				return err
			}

			c := newClient()
			p, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}
			o, err := c.ImportRetailOffer(context.Background(), p.ID, req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(o)
			}
			fmt.Printf("Retail offer saved for %s.\n", p.ASIN)
			return nil
		},
	}
	cmd.Flags().StringVar(&storeID, "store", "", "retail store ID")
	cmd.Flags().StringVar(&price, "price", "", "offer price")
	cmd.Flags().StringVar(&shipping, "shipping", "", "shipping cost")
	cmd.Flags().BoolVar(&unavailable, "unavailable", false, "mark the offer out of stock")
	cmd.Flags().StringVar(&offerURL, "url", "", "offer page URL")

	return cmd
}

func parseDecimalFlag(flag, val string, required bool) (decimal.Decimal, error) {
	if val == "" {
		if required {
			return decimal.Zero, fmt.Errorf("--%s is required", flag)
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return d, nil
}
