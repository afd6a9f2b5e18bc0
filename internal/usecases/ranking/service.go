package ranking

import (
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-eda/internal/domain"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
)

const (
	categoryColumn = "category"
	amountColumn   = "sale_amount"
)

type RankingService interface {
	RankCategories(dataset domain.Dataset) (domain.CategoryRanking, error)
}

type CategoryRankingService struct{}

func NewCategoryRankingService() RankingService {
	return &CategoryRankingService{}
}

// RankCategories soma o valor de venda por categoria e ordena do maior para o menor total
func (s *CategoryRankingService) RankCategories(dataset domain.Dataset) (domain.CategoryRanking, error) {
	if len(dataset) == 0 {
		return nil, analysisErrors.Degenerate(string(domain.StageAggregation), "conjunto de dados vazio")
	}

	if missing := dataset.MissingCount(); missing > 0 {
		return nil, analysisErrors.Degenerate(string(domain.StageAggregation),
			"conjunto ainda possui %d valores de venda nulos", missing)
	}

	totals, err := sumByCategory(dataset)
	if err != nil {
		return nil, err
	}

	ranking := make([]*domain.CategoryAggregate, 0, len(totals))
	for _, category := range domain.Categories {
		total, exists := totals[category]
		if !exists {
			continue
		}
		ranking = append(ranking, &domain.CategoryAggregate{
			Category:   category,
			TotalSales: total,
		})
	}

	updatePositions(ranking)

	result := make(domain.CategoryRanking, len(ranking))
	for i, item := range ranking {
		result[i] = *item
	}

	logrus.WithFields(logrus.Fields{
		"categories": len(result),
		"total":      result.Total(),
	}).Debug("Ranking de categorias calculado")

	return result, nil
}

func sumByCategory(dataset domain.Dataset) (map[domain.Category]float64, error) {
	categories := make([]string, len(dataset))
	amounts := make([]float64, len(dataset))
	for i, record := range dataset {
		categories[i] = string(record.Category)
		amounts[i] = *record.SaleAmount
	}

	df := dataframe.New(
		series.New(categories, series.String, categoryColumn),
		series.New(amounts, series.Float, amountColumn),
	)
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "falha ao montar dataframe de vendas")
	}

	grouped := df.GroupBy(categoryColumn)
	if grouped.Err != nil {
		return nil, errors.Wrap(grouped.Err, "falha ao agrupar vendas por categoria")
	}

	aggregated := grouped.Aggregation([]dataframe.AggregationType{dataframe.Aggregation_SUM}, []string{amountColumn})
	if aggregated.Err != nil {
		return nil, errors.Wrap(aggregated.Err, "falha ao somar vendas por categoria")
	}

	sumColumn := ""
	for _, name := range aggregated.Names() {
		if name != categoryColumn {
			sumColumn = name
		}
	}

	names := aggregated.Col(categoryColumn).Records()
	sums := aggregated.Col(sumColumn).Float()

	totals := make(map[domain.Category]float64, len(names))
	for i, name := range names {
		totals[domain.Category(name)] = sums[i]
	}

	return totals, nil
}

// updatePositions ordena por total decrescente. Empates mantêm a ordem fixa das categorias.
func updatePositions(ranking []*domain.CategoryAggregate) {
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalSales > ranking[j].TotalSales
	})

	for i, item := range ranking {
		item.Position = i + 1
	}
}
