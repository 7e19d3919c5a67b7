package scoring

import (
	"strings"
	"time"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/utils/texto"
)

// MaxAlocacoes caps the allocation count: 4 or more commitments collapse
// into the "4+" bucket.
const MaxAlocacoes = 4

// Allocation-count buckets, indexed by the clamped count.
var bucketLabels = [MaxAlocacoes + 1]string{
	"Desalocado",
	"1 Alocação",
	"2 Alocações",
	"3 Alocações",
	"4+ Alocações",
}

// Allocations counts how many concurrent commitments a member holds, clamped
// at MaxAlocacoes. now is only consulted under the end-date-aware policy.
func Allocations(m *model.Member, now time.Time, policy Policy) int {
	count := 0

	for _, projeto := range m.Projetos {
		if !projeto.Nome.Present() {
			continue
		}
		if policy.Contagem == ContagemDataFim {
			// Only count projects still running: no end date means open-ended.
			if fim := projeto.FimEfetivo(); fim.Present() && !fim.Value().After(now) {
				continue
			}
		}
		count++
	}

	for _, interno := range m.ProjetosInternos {
		if interno.Nome.Present() {
			count++
		}
	}

	if m.CargoWI.Present() {
		count++
	}
	if m.CargoMKT.Present() {
		count++
	}

	// Numeric activities contribute their value, not mere presence.
	count += int(m.Aprendizagens.Or(0))
	count += int(m.Assessorias.Or(0))

	if strings.Contains(texto.Normalizar(m.CargoNucleo), "comercial") {
		count++
	}

	if count > MaxAlocacoes {
		count = MaxAlocacoes
	}
	return count
}

// AllocationBucket renders a clamped allocation count as its display bucket.
func AllocationBucket(count int) string {
	if count < 0 {
		count = 0
	}
	if count > MaxAlocacoes {
		count = MaxAlocacoes
	}
	return bucketLabels[count]
}

// BucketToCount maps a bucket label back to the count it selects, returning
// the count and whether the label is the open-ended "4+" bucket.
func BucketToCount(bucket string) (count int, openEnded bool, ok bool) {
	for i, label := range bucketLabels {
		if label == bucket {
			return i, i == MaxAlocacoes, true
		}
	}
	return 0, false, false
}
