package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
	"github.com/vfg2006/sales-eda/pkg/utils"
)

// Formatos de relatório suportados
const (
	ReportFormatText = "text"
	ReportFormatJSON = "json"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Generator Generator `mapstructure:",squash"`
	Analysis  Analysis  `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Report    Report    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// Semente única compartilhada por geração, amostragem de nulos e divisão treino/teste
	Seed uint64 `mapstructure:"seed"`
}

type Generator struct {
	RecordCount      int       `mapstructure:"record_count"`
	StartDateRaw     string    `mapstructure:"start_date"`
	StartDate        time.Time `mapstructure:"-"`
	SaleAmountMin    float64   `mapstructure:"sale_amount_min"`
	SaleAmountMax    float64   `mapstructure:"sale_amount_max"`
	MarketingCostMin float64   `mapstructure:"marketing_cost_min"`
	MarketingCostMax float64   `mapstructure:"marketing_cost_max"`
	MissingFraction  float64   `mapstructure:"missing_fraction"`
}

type Analysis struct {
	TestSize          float64 `mapstructure:"test_size"`
	SignificanceLevel float64 `mapstructure:"significance_level"`
}

type Dashboard struct {
	Enabled       bool    `mapstructure:"dashboard_enabled"`
	Path          string  `mapstructure:"dashboard_path"`
	WidthInches   float64 `mapstructure:"dashboard_width_inches"`
	HeightInches  float64 `mapstructure:"dashboard_height_inches"`
	HistogramBins int     `mapstructure:"histogram_bins"`
}

type Report struct {
	Format string `mapstructure:"report_format"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED", 42)

	v.SetDefault("RECORD_COUNT", 365)
	v.SetDefault("START_DATE", "2023-01-01")
	v.SetDefault("SALE_AMOUNT_MIN", 50.0)
	v.SetDefault("SALE_AMOUNT_MAX", 500.0)
	v.SetDefault("MARKETING_COST_MIN", 10.0)
	v.SetDefault("MARKETING_COST_MAX", 100.0)
	v.SetDefault("MISSING_FRACTION", 0.05) // 5% dos valores de venda viram nulos

	v.SetDefault("TEST_SIZE", 0.2)           // 80/20 treino/teste
	v.SetDefault("SIGNIFICANCE_LEVEL", 0.05) // alfa do teste ANOVA

	v.SetDefault("DASHBOARD_ENABLED", true)
	v.SetDefault("DASHBOARD_PATH", "dashboard.png")
	v.SetDefault("DASHBOARD_WIDTH_INCHES", 16.0)
	v.SetDefault("DASHBOARD_HEIGHT_INCHES", 12.0)
	v.SetDefault("HISTOGRAM_BINS", 30)

	v.SetDefault("REPORT_FORMAT", ReportFormatText)
}

// NewConfig carrega a configuração do ambiente (e de um .env opcional) sobre os valores padrão
func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Arquivo .env não lido pelo Viper, usando apenas variáveis de ambiente: ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return load(v)
}

// Default devolve a configuração padrão, sem consultar o ambiente
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	cfg, err := load(v)
	if err != nil {
		// os valores padrão são sempre válidos
		panic(err)
	}

	return cfg
}

func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	startDate, err := utils.ParseDate(config.Generator.StartDateRaw)
	if err != nil {
		return nil, analysisErrors.InvalidConfig("START_DATE inválida %q: %v", config.Generator.StartDateRaw, err)
	}
	config.Generator.StartDate = *startDate

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita combinações de parâmetros que nenhuma etapa consegue processar
func (c *Config) Validate() error {
	g := c.Generator

	switch {
	case g.RecordCount <= 0:
		return analysisErrors.InvalidConfig("RECORD_COUNT deve ser positivo, recebido %d", g.RecordCount)
	case g.SaleAmountMin > g.SaleAmountMax:
		return analysisErrors.InvalidConfig("SALE_AMOUNT_MIN (%.2f) maior que SALE_AMOUNT_MAX (%.2f)", g.SaleAmountMin, g.SaleAmountMax)
	case g.MarketingCostMin > g.MarketingCostMax:
		return analysisErrors.InvalidConfig("MARKETING_COST_MIN (%.2f) maior que MARKETING_COST_MAX (%.2f)", g.MarketingCostMin, g.MarketingCostMax)
	case g.MissingFraction < 0 || g.MissingFraction > 1:
		return analysisErrors.InvalidConfig("MISSING_FRACTION deve estar em [0,1], recebido %v", g.MissingFraction)
	case c.Analysis.TestSize <= 0 || c.Analysis.TestSize >= 1:
		return analysisErrors.InvalidConfig("TEST_SIZE deve estar em (0,1), recebido %v", c.Analysis.TestSize)
	case c.Analysis.SignificanceLevel <= 0 || c.Analysis.SignificanceLevel >= 1:
		return analysisErrors.InvalidConfig("SIGNIFICANCE_LEVEL deve estar em (0,1), recebido %v", c.Analysis.SignificanceLevel)
	case c.Dashboard.HistogramBins <= 0:
		return analysisErrors.InvalidConfig("HISTOGRAM_BINS deve ser positivo, recebido %d", c.Dashboard.HistogramBins)
	case c.Dashboard.WidthInches <= 0 || c.Dashboard.HeightInches <= 0:
		return analysisErrors.InvalidConfig("dimensões do dashboard devem ser positivas")
	case c.Report.Format != ReportFormatText && c.Report.Format != ReportFormatJSON:
		return analysisErrors.InvalidConfig("REPORT_FORMAT desconhecido: %q", c.Report.Format)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
