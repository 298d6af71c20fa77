package services

import (
	"strings"

	"hotelhub/errors"
	"hotelhub/models"
	"hotelhub/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// Không gợi ý khi chuỗi nhập quá khác mọi ứng viên
const maxSuggestDistance = 5

type SearchServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// SearchService tìm phòng theo số phòng hoặc tên loại phòng, chịu được
// gõ sai chính tả và thiếu dấu
type SearchService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewSearchService(opts SearchServiceOptions) *SearchService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &SearchService{db: opts.DB, logger: l}
}

func normalizeQuery(s string) string {
	return unidecode.Unidecode(strings.ToLower(strings.TrimSpace(s)))
}

// SuggestRooms gợi ý phòng gần khớp nhất với chuỗi tìm kiếm. Ứng viên là
// số phòng và tên loại phòng đã bỏ dấu, xếp hạng bằng bag-of-words rồi
// chặn lại bằng khoảng cách Levenshtein.
func (s *SearchService) SuggestRooms(query string, limit int) ([]models.Room, *errors.AppError) {
	query = normalizeQuery(query)
	if query == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Chuỗi tìm kiếm không được để trống", nil)
	}
	if limit <= 0 {
		limit = 5
	}

	var rooms []models.Room
	if err := s.db.Preload("RoomType").Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}
	if len(rooms) == 0 {
		return []models.Room{}, nil
	}

	candidates := make([]string, 0, len(rooms))
	byCandidate := make(map[string]models.Room, len(rooms))
	for _, room := range rooms {
		key := normalizeQuery(room.RoomNumber + " " + room.RoomType.Name)
		candidates = append(candidates, key)
		byCandidate[key] = room
	}

	cm := closestmatch.New(candidates, []int{2, 3})
	matches := cm.ClosestN(query, limit*2)

	results := make([]models.Room, 0, limit)
	seen := make(map[uint]bool)
	for _, match := range matches {
		if match == "" {
			continue
		}
		distance := levenshtein.DistanceForStrings(
			[]rune(query), []rune(match), levenshtein.DefaultOptions)
		// Khớp substring luôn chấp nhận, còn lại chặn theo khoảng cách
		if !strings.Contains(match, query) && distance > maxSuggestDistance {
			continue
		}
		room := byCandidate[match]
		if seen[room.ID] {
			continue
		}
		seen[room.ID] = true
		results = append(results, room)
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}
