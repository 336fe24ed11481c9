package sink

import (
	"github.com/parquet-go/parquet-go"

	"spy-data/internal/model"
)

// ParquetSaver writes one packet as Parquet.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(bars []model.Bar, path string) error {
	return parquet.WriteFile(path, bars)
}
