package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	apiclient "arbitrack/internal/api/client"
)

func calcCmd() *cobra.Command {
	var (
		retailPrice    string
		retailShipping string
		amazonPrice    string
		marketplace    string
		vatRate        string
		prepCost       string
		fbaFee         string
		referralFee    string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute profitability for a hypothetical purchase",
		Long: "Compute landed cost, margin, and ROI for a retail price against an\n" +
			"Amazon price using the stored settings. Flags override settings for\n" +
			"this one calculation.",
		Example: `  arbctl calc --retail-price 11.99 --amazon-price 29.99 --marketplace FR
  arbctl calc --retail-price 11.99 --amazon-price 29.99 --vat-rate 0.19`,
		RunE: func(_ *cobra.Command, _ []string) error {
			req := &apiclient.CalcRequest{Marketplace: marketplace}

			var err error
			if req.RetailPrice, err = parseDecimalFlag("retail-price", retailPrice, true); err != nil {
				return err
			}
			if req.RetailShipping, err = parseDecimalFlag("retail-shipping", retailShipping, false); err != nil {
				return err
			}
			optional := func(flag, val string, dst **decimal.Decimal) error {
				if val == "" {
					return nil
				}
				d, err := decimal.NewFromString(val)
				if err != nil {
					return fmt.Errorf("invalid --%s: %w", flag, err)
				}
				*dst = &d
				return nil
			}
			if err := optional("amazon-price", amazonPrice, &req.AmazonPrice); err != nil {
				return err
			}
			if err := optional("vat-rate", vatRate, &req.VATRate); err != nil {
				return err
			}
			if err := optional("prep-cost", prepCost, &req.PrepCost); err != nil {
				return err
			}
			if err := optional("fba-fee", fbaFee, &req.FBAFee); err != nil {
				return err
			}
			if err := optional("referral-fee", referralFee, &req.ReferralFee); err != nil {
				return err
			}

			c := newClient()
			result, err := c.Calc(context.Background(), req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}
			return printCalcResult(result)
		},
	}
	cmd.Flags().StringVar(&retailPrice, "retail-price", "", "retail purchase price")
	cmd.Flags().StringVar(&retailShipping, "retail-shipping", "", "retail shipping cost")
	cmd.Flags().StringVar(&amazonPrice, "amazon-price", "", "Amazon sale price")
	cmd.Flags().StringVar(&marketplace, "marketplace", "", "marketplace for fee lookup")
	cmd.Flags().StringVar(&vatRate, "vat-rate", "", "VAT rate override")
	cmd.Flags().StringVar(&prepCost, "prep-cost", "", "prep cost override")
	cmd.Flags().StringVar(&fbaFee, "fba-fee", "", "FBA fee override")
	cmd.Flags().StringVar(&referralFee, "referral-fee", "", "referral fee override")

	return cmd
}
