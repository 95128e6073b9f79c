package logic

import (
	"fmt"
	"sync"
	"time"

	"github.com/gabgmont/go-globe/internal/logger"
	"github.com/gabgmont/go-globe/internal/model"
	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Indicators 站点指标
// 口径沿用线上行为：申请数和资金总额均不过滤状态，
// 国家数按 location 原文去重（区分大小写）。
type Indicators struct {
	ActiveMissionaries int64           `json:"activeMissionaries"`
	CountriesAchieved  int64           `json:"countriesAchieved"`
	ProjectsCreated    int64           `json:"projectsCreated"`
	AmountFunded       decimal.Decimal `json:"amountFunded"`
}

// IndicatorLogic 站点指标聚合
// 五路查询在协程池上并发执行，任一失败则整体失败，不返回部分结果。
// 上次结果缓存一个 TTL 周期，写入方调用 Invalidate 使其失效。
type IndicatorLogic struct {
	db   *gorm.DB
	pool *ants.Pool

	mu       sync.RWMutex
	cached   *Indicators
	cachedAt time.Time
	ttl      time.Duration
}

// NewIndicatorLogic 创建站点指标聚合
func NewIndicatorLogic(db *gorm.DB, ttl time.Duration) *IndicatorLogic {
	pool, err := ants.NewPool(8)
	if err != nil {
		logger.Fatal("Failed to create indicator worker pool: %v", err)
	}

	return &IndicatorLogic{
		db:   db,
		pool: pool,
		ttl:  ttl,
	}
}

// ComputeIndicators 计算站点指标，TTL 内返回缓存结果
func (i *IndicatorLogic) ComputeIndicators() (*Indicators, error) {
	i.mu.RLock()
	if i.cached != nil && time.Since(i.cachedAt) < i.ttl {
		cached := *i.cached
		i.mu.RUnlock()
		return &cached, nil
	}
	i.mu.RUnlock()

	return i.Refresh()
}

// Refresh 强制重新计算并更新缓存
func (i *IndicatorLogic) Refresh() (*Indicators, error) {
	var (
		missionaries  int64
		locations     []string
		projects      int64
		supportAmts   []decimal.Decimal
		contributions []decimal.Decimal
	)

	fetches := []func() error{
		func() error {
			return i.db.Model(&model.MissionaryApplicationModel{}).Count(&missionaries).Error
		},
		func() error {
			return i.db.Model(&model.MissionModel{}).Pluck("location", &locations).Error
		},
		func() error {
			return i.db.Model(&model.ProjectModel{}).Count(&projects).Error
		},
		func() error {
			return i.db.Model(&model.SupportModel{}).Pluck("amount", &supportAmts).Error
		},
		func() error {
			return i.db.Model(&model.ContributionModel{}).Pluck("amount", &contributions).Error
		},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(fetches))
	for n, fetch := range fetches {
		n, fetch := n, fetch
		wg.Add(1)
		if err := i.pool.Submit(func() {
			defer wg.Done()
			errs[n] = fetch()
		}); err != nil {
			wg.Done()
			errs[n] = err
		}
	}
	wg.Wait()

	// 任一查询失败则整体失败，不返回部分指标
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: 获取站点指标失败: %v", ErrRemoteUnavailable, err)
		}
	}

	countries := make(map[string]struct{}, len(locations))
	for _, location := range locations {
		countries[location] = struct{}{}
	}

	funded := decimal.Zero
	for _, amount := range supportAmts {
		funded = funded.Add(amount)
	}
	for _, amount := range contributions {
		funded = funded.Add(amount)
	}

	indicators := &Indicators{
		ActiveMissionaries: missionaries,
		CountriesAchieved:  int64(len(countries)),
		ProjectsCreated:    projects,
		AmountFunded:       funded,
	}

	i.mu.Lock()
	i.cached = indicators
	i.cachedAt = time.Now()
	i.mu.Unlock()

	result := *indicators
	return &result, nil
}

// Invalidate 使缓存失效，下次读取重新计算
func (i *IndicatorLogic) Invalidate() {
	i.mu.Lock()
	i.cached = nil
	i.mu.Unlock()
}

// Release 释放协程池
func (i *IndicatorLogic) Release() {
	i.pool.Release()
}
