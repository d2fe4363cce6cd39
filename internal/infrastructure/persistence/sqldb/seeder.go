package sqldb

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// SeedRow 种子文件中的一行
// JSON也是合法的YAML,所以books.json和books.yaml都用yaml.v3解析
type SeedRow struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   *int   `yaml:"year"`
}

// fallbackRows 种子文件缺失或为空时使用
var fallbackRows = []SeedRow{
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: intPtr(1937)},
	{Title: "1984", Author: "George Orwell", Year: intPtr(1949)},
}

// Seeder 启动时的演示数据填充
// 规则:
// 1. 记录数已达到目标值时什么都不做
// 2. 否则插入种子文件的全部行(一个事务)
// 3. 仍不足时逐条补齐"Seed Book n"
type Seeder struct {
	repo      book.Repository
	txManager *TxManager
	cfg       config.SeedConfig
	log       *slog.Logger
}

// NewSeeder 创建Seeder
func NewSeeder(repo book.Repository, txManager *TxManager, cfg *config.Config, log *slog.Logger) *Seeder {
	return &Seeder{
		repo:      repo,
		txManager: txManager,
		cfg:       cfg.Seed,
		log:       log,
	}
}

// Seed 执行填充,返回插入的记录数
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	target := int64(s.cfg.Target)

	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count >= target {
		return 0, nil
	}

	rows, err := LoadSeedRows(s.cfg.File)
	if err != nil {
		// 文件损坏不阻止启动,退回内置数据
		s.log.Warn("load seed file failed, using fallback rows",
			slog.String("file", s.cfg.File), slog.Any("error", err))
		rows = nil
	}
	if len(rows) == 0 {
		rows = fallbackRows
	}

	inserted := 0
	err = s.txManager.Transaction(ctx, func(ctx context.Context) error {
		for i, row := range rows {
			if err := s.repo.Create(ctx, book.NewBook(seedPayload(i+1, row))); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("插入种子数据失败: %w", err)
	}
	inserted += len(rows)

	// 补齐
	count, err = s.repo.Count(ctx)
	if err != nil {
		return inserted, err
	}
	for ; count < target; count++ {
		if err := s.repo.Create(ctx, book.NewBook(topUpPayload(int(count)+1))); err != nil {
			return inserted, fmt.Errorf("补齐种子数据失败: %w", err)
		}
		inserted++
	}

	metrics.InitMetrics()
	metrics.AddCounter(metrics.BooksSeededTotal, float64(inserted))

	s.log.Info("seed completed", slog.Int("inserted", inserted), slog.Int64("total", count))
	return inserted, nil
}

// LoadSeedRows 读取种子文件,文件不存在时返回nil
func LoadSeedRows(path string) ([]SeedRow, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var rows []SeedRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("解析种子文件失败: %w", err)
	}
	return rows, nil
}

// seedPayload 第i行(从1开始)的确定性字段
func seedPayload(i int, row SeedRow) book.Payload {
	categories := book.Categories()

	title := row.Title
	if title == "" {
		title = fmt.Sprintf("Book %d", i)
	}
	author := row.Author
	if author == "" {
		author = "Unknown"
	}
	year := 2000
	if row.Year != nil {
		year = *row.Year
	}

	return book.Payload{
		Title:    title,
		Author:   author,
		Year:     year,
		Category: categories[i%len(categories)],
		Rating:   roundTo(float64((i*37)%50)/10, 1),
		Price:    roundTo(5+float64((i*19)%300)/10, 2),
		ImageURL: fmt.Sprintf("https://placehold.co/160x220?text=Book+%d", i),
	}
}

// topUpPayload 补齐数据,n为补齐后的记录序号
func topUpPayload(n int) book.Payload {
	return book.Payload{
		Title:    fmt.Sprintf("Seed Book %d", n),
		Author:   "Seed Author",
		Year:     2000 + n%20,
		Category: book.CategoryOther,
		Rating:   3.5,
		Price:    9.99,
		ImageURL: fmt.Sprintf("https://placehold.co/160x220?text=Seed+%d", n),
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func intPtr(v int) *int { return &v }
