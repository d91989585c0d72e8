package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Product queries.
const (
	queryUpsertProduct = `
		INSERT INTO products (
			asin, title, brand, category, image_url, description,
			created_at, updated_at
		) VALUES (
			@asin, @title, @brand, @category, @image_url, @description,
			now(), now()
		)
		ON CONFLICT (asin) DO UPDATE SET
			title = EXCLUDED.title,
			brand = EXCLUDED.brand,
			category = EXCLUDED.category,
			image_url = EXCLUDED.image_url,
			description = EXCLUDED.description,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetProduct = `
		SELECT id, asin, title, brand, category, image_url, description,
			created_at, updated_at
		FROM products
		WHERE id = $1`

	queryGetProductByASIN = `
		SELECT id, asin, title, brand, category, image_url, description,
			created_at, updated_at
		FROM products
		WHERE asin = $1`

	queryListProducts = `
		SELECT id, asin, title, brand, category, image_url, description,
			created_at, updated_at
		FROM products
		ORDER BY asin
		LIMIT $1 OFFSET $2`

	queryCountProducts = `SELECT COUNT(*) FROM products`

	queryListCandidateProducts = `
		SELECT DISTINCT p.id, p.asin, p.title, p.brand, p.category,
			p.image_url, p.description, p.created_at, p.updated_at
		FROM products p
		JOIN offers_amazon oa ON oa.product_id = p.id
		WHERE $1 = '' OR oa.marketplace = $1
		ORDER BY p.asin`
)

// Amazon offer queries.
const (
	queryUpsertAmazonOffer = `
		INSERT INTO offers_amazon (
			product_id, marketplace, price, shipping_cost,
			fba_fee, referral_fee, sellers_count, buybox_stable, bsr,
			created_at, updated_at
		) VALUES (
			@product_id, @marketplace, @price, @shipping_cost,
			@fba_fee, @referral_fee, @sellers_count, @buybox_stable, @bsr,
			now(), now()
		)
		ON CONFLICT (product_id, marketplace) DO UPDATE SET
			price = EXCLUDED.price,
			shipping_cost = EXCLUDED.shipping_cost,
			fba_fee = EXCLUDED.fba_fee,
			referral_fee = EXCLUDED.referral_fee,
			sellers_count = EXCLUDED.sellers_count,
			buybox_stable = EXCLUDED.buybox_stable,
			bsr = EXCLUDED.bsr,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryListAmazonOffers = `
		SELECT id, product_id, marketplace, price, shipping_cost,
			fba_fee, referral_fee, sellers_count, buybox_stable, bsr,
			created_at, updated_at
		FROM offers_amazon
		WHERE product_id = $1
		ORDER BY marketplace`
)

// Retail offer queries.
const (
	queryUpsertRetailOffer = `
		INSERT INTO offers_retail (
			product_id, store_id, price, shipping_cost, availability, url,
			created_at, updated_at
		) VALUES (
			@product_id, @store_id, @price, @shipping_cost, @availability, @url,
			now(), now()
		)
		ON CONFLICT (product_id, store_id) DO UPDATE SET
			price = EXCLUDED.price,
			shipping_cost = EXCLUDED.shipping_cost,
			availability = EXCLUDED.availability,
			url = EXCLUDED.url,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryListRetailOffers = `
		SELECT id, product_id, store_id, price, shipping_cost,
			availability, url, created_at, updated_at
		FROM offers_retail
		WHERE product_id = $1
		ORDER BY price`

	queryBestRetailOffer = `
		SELECT o.id, o.product_id, o.store_id, o.price, o.shipping_cost,
			o.availability, o.url, o.created_at, o.updated_at
		FROM offers_retail o
		JOIN retail_stores st ON st.id = o.store_id
		WHERE o.product_id = $1 AND o.availability AND st.active
		ORDER BY o.price ASC
		LIMIT 1`
)

// Retail store queries.
const (
	queryCreateStore = `
		INSERT INTO retail_stores (name, url, selectors, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id, created_at, updated_at`

	queryGetStore = `
		SELECT id, name, url, selectors, active, created_at, updated_at
		FROM retail_stores
		WHERE id = $1`

	queryListStores = `
		SELECT id, name, url, selectors, active, created_at, updated_at
		FROM retail_stores
		WHERE $1 = false OR active
		ORDER BY name`

	queryUpdateStore = `
		UPDATE retail_stores SET
			name = $2, url = $3, selectors = $4, active = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	queryDeleteStore = `DELETE FROM retail_stores WHERE id = $1`

	querySetStoreActive = `
		UPDATE retail_stores SET active = $2, updated_at = now() WHERE id = $1`
)

// Score queries.
const (
	queryUpsertScore = `
		INSERT INTO scores (
			product_id, marketplace, landed_cost, margin_eur, roi_percent,
			best_retail_offer_id, best_amazon_offer_id, calculated_at
		) VALUES (
			@product_id, @marketplace, @landed_cost, @margin_eur, @roi_percent,
			@best_retail_offer_id, @best_amazon_offer_id, now()
		)
		ON CONFLICT (product_id, marketplace) DO UPDATE SET
			landed_cost = EXCLUDED.landed_cost,
			margin_eur = EXCLUDED.margin_eur,
			roi_percent = EXCLUDED.roi_percent,
			best_retail_offer_id = EXCLUDED.best_retail_offer_id,
			best_amazon_offer_id = EXCLUDED.best_amazon_offer_id,
			calculated_at = now()
		RETURNING id, calculated_at`

	queryGetScore = `
		SELECT id, product_id, marketplace, landed_cost, margin_eur,
			roi_percent, best_retail_offer_id, best_amazon_offer_id,
			calculated_at
		FROM scores
		WHERE product_id = $1 AND marketplace = $2`
)

// Alert queries.
const (
	queryCreateAlert = `
		INSERT INTO alerts (name, description, filters, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id, created_at, updated_at`

	queryGetAlert = `
		SELECT id, name, description, filters, active, last_run_at,
			created_at, updated_at
		FROM alerts
		WHERE id = $1`

	queryListAlerts = `
		SELECT id, name, description, filters, active, last_run_at,
			created_at, updated_at
		FROM alerts
		WHERE $1 = false OR active
		ORDER BY name`

	queryUpdateAlert = `
		UPDATE alerts SET
			name = $2, description = $3, filters = $4, active = $5,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	queryDeleteAlert = `DELETE FROM alerts WHERE id = $1`

	querySetAlertActive = `
		UPDATE alerts SET active = $2, updated_at = now() WHERE id = $1`

	queryTouchAlertLastRun = `
		UPDATE alerts SET last_run_at = now() WHERE id = $1`
)

// Settings queries.
const (
	queryGetSetting = `
		SELECT key, value, updated_at FROM settings WHERE key = $1`

	queryPutSetting = `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()`

	queryListSettings = `
		SELECT key, value, updated_at FROM settings ORDER BY key`
)

// Job queries. Jobs double as the durable work queue: pending rows are
// claimed with SKIP LOCKED so concurrent workers never grab the same job.
const (
	queryEnqueueJob = `
		INSERT INTO jobs (job_type, parameters)
		VALUES ($1, $2)
		RETURNING id, status, created_at`

	queryClaimJobs = `
		WITH claimed AS (
			SELECT id FROM jobs
			WHERE status = 'pending'
			ORDER BY created_at ASC
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		UPDATE jobs
		SET status = 'running', claimed_by = $1, started_at = now()
		FROM claimed
		WHERE jobs.id = claimed.id
		RETURNING jobs.id, jobs.job_type, jobs.status, jobs.parameters,
			jobs.result, jobs.error_text, jobs.started_at,
			jobs.completed_at, jobs.created_at`

	queryCompleteJob = `
		UPDATE jobs
		SET status = 'completed', result = $2, completed_at = now()
		WHERE id = $1`

	queryFailJob = `
		UPDATE jobs
		SET status = 'failed', error_text = $2, completed_at = now()
		WHERE id = $1`

	queryGetJob = `
		SELECT id, job_type, status, parameters, result, error_text,
			started_at, completed_at, created_at
		FROM jobs
		WHERE id = $1`

	queryListJobs = `
		SELECT id, job_type, status, parameters, result, error_text,
			started_at, completed_at, created_at
		FROM jobs
		WHERE $1 = '' OR job_type = $1
		ORDER BY created_at DESC
		LIMIT $2`

	queryRecoverStaleJobs = `
		UPDATE jobs
		SET status = 'crashed',
			error_text = 'worker did not complete',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`
)
