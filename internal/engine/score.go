package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arbitrack/internal/metrics"
	"arbitrack/internal/settings"
	"arbitrack/internal/store"
	"arbitrack/pkg/finance"
	domain "arbitrack/pkg/types"
)

// RefreshScores recomputes the score of every (product, marketplace) pair
// that has an Amazon offer, optionally restricted to one marketplace.
// Settings are snapshotted once so the whole batch is scored under the same
// configuration. Pairs without an available retail offer are skipped; their
// previous score, if any, stays in place.
//
// In the default mode scores commit one by one, so a mid-run failure keeps
// the progress made so far. With WithTransactional the run is all-or-nothing.
func (eng *Engine) RefreshScores(ctx context.Context, marketplace string) (*RefreshResult, error) {
	start := time.Now()
	defer func() {
		metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	}()

	res := &RefreshResult{Marketplace: marketplace}

	run := func(s store.Store) error {
		return eng.refresh(ctx, s, marketplace, res)
	}

	var err error
	if eng.transactional {
		err = eng.store.WithTx(ctx, run)
	} else {
		err = run(eng.store)
	}
	if err != nil {
		metrics.ScoringErrorsTotal.Inc()
		return res, err
	}

	eng.log.Info("score refresh completed",
		"marketplace", marketplace,
		"products_seen", res.ProductsSeen,
		"scores_updated", res.ScoresUpdated,
		"duration", time.Since(start),
	)
	return res, nil
}

func (eng *Engine) refresh(ctx context.Context, s store.Store, marketplace string, res *RefreshResult) error {
	resolver := settings.NewResolver(s, eng.log)
	snap, err := resolver.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("resolving settings: %w", err)
	}

	products, err := s.ListCandidateProducts(ctx, marketplace)
	if err != nil {
		return fmt.Errorf("listing candidate products: %w", err)
	}

	for i := range products {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p := &products[i]
		res.ProductsSeen++

		best, err := s.BestRetailOffer(ctx, p.ID)
		if errors.Is(err, domain.ErrNotFound) {
			// Nothing sourceable right now.
			continue
		}
		if err != nil {
			return fmt.Errorf("finding best retail offer for %s: %w", p.ASIN, err)
		}

		offers, err := s.ListAmazonOffers(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("listing amazon offers for %s: %w", p.ASIN, err)
		}

		for j := range offers {
			o := &offers[j]
			if marketplace != "" && o.Marketplace != marketplace {
				continue
			}

			if err := scorePair(ctx, s, snap, p, o, best); err != nil {
				return err
			}
			res.ScoresUpdated++
		}
	}

	return nil
}

// scorePair computes and upserts one (product, marketplace) score from the
// Amazon offer and the best retail offer.
func scorePair(
	ctx context.Context,
	s store.Store,
	snap *settings.Snapshot,
	p *domain.Product,
	o *domain.AmazonOffer,
	best *domain.RetailOffer,
) error {
	// Fees come from the snapshot's schedule for the offer's marketplace.
	// Fee figures recorded on the offer row are observations for the ad hoc
	// calculator, never scoring inputs.
	fees := snap.FeesFor(o.Marketplace)

	price := o.Price
	result := finance.Compute(finance.Inputs{
		RetailPrice:    best.Price,
		RetailShipping: best.ShippingCost,
		VATRate:        snap.VATRate,
		PrepCost:       snap.PrepCost,
		AmazonPrice:    &price,
		FBAFee:         fees.FBAFee,
		ReferralFee:    fees.ReferralFee,
	})

	sc := &domain.Score{
		ProductID:         p.ID,
		Marketplace:       o.Marketplace,
		LandedCost:        result.LandedCost,
		Margin:            result.Margin,
		ROIPercent:        result.ROIPercent.Round(2),
		BestRetailOfferID: best.ID,
		BestAmazonOfferID: o.ID,
	}
	if err := s.UpsertScore(ctx, sc); err != nil {
		return fmt.Errorf("upserting score for %s/%s: %w", p.ASIN, o.Marketplace, err)
	}

	roi, _ := sc.ROIPercent.Float64()
	metrics.ROIDistribution.Observe(roi)
	metrics.ScoresRefreshedTotal.Inc()
	return nil
}
