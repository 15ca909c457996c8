package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. Each framework lives in its own
// nullable column so partial profiles scan cleanly.
type PGRepo struct {
	DB *sql.DB
}

// Get returns the stored profile for a user.
func (r *PGRepo) Get(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT user_id, big_five, mbti, enneagram, zodiac, chinese_zodiac, human_design,
       attachment_style, love_languages, created_at, updated_at
FROM profiles
WHERE user_id = $1
LIMIT 1`

	var p Profile
	var bigFive sql.NullString
	var mbti sql.NullString
	var enneagram sql.NullInt64
	var zodiac sql.NullString
	var chineseZodiac sql.NullString
	var humanDesign sql.NullString
	var attachmentStyle sql.NullString
	var loveLanguages sql.NullString

	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID,
		&bigFive,
		&mbti,
		&enneagram,
		&zodiac,
		&chineseZodiac,
		&humanDesign,
		&attachmentStyle,
		&loveLanguages,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}

	if bigFive.Valid {
		var scores BigFiveScores
		if err := json.Unmarshal([]byte(bigFive.String), &scores); err == nil {
			p.BigFive = &scores
		}
	}
	if mbti.Valid {
		p.MBTI = mbti.String
	}
	if enneagram.Valid {
		p.Enneagram = int(enneagram.Int64)
	}
	if zodiac.Valid {
		var z ZodiacData
		if err := json.Unmarshal([]byte(zodiac.String), &z); err == nil {
			p.Zodiac = &z
		}
	}
	if chineseZodiac.Valid {
		var cz ChineseZodiacData
		if err := json.Unmarshal([]byte(chineseZodiac.String), &cz); err == nil {
			p.ChineseZodiac = &cz
		}
	}
	if humanDesign.Valid {
		var hd HumanDesignData
		if err := json.Unmarshal([]byte(humanDesign.String), &hd); err == nil {
			p.HumanDesign = &hd
		}
	}
	if attachmentStyle.Valid {
		p.AttachmentStyle = AttachmentStyle(attachmentStyle.String)
	}
	if loveLanguages.Valid {
		var langs []LoveLanguage
		if err := json.Unmarshal([]byte(loveLanguages.String), &langs); err == nil {
			p.LoveLanguages = langs
		}
	}
	return p, nil
}

// Upsert inserts or replaces the user's profile row.
func (r *PGRepo) Upsert(ctx context.Context, profile Profile) (Profile, error) {
	const query = `
INSERT INTO profiles (
	user_id, big_five, mbti, enneagram, zodiac, chinese_zodiac, human_design,
	attachment_style, love_languages, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
	big_five = EXCLUDED.big_five,
	mbti = EXCLUDED.mbti,
	enneagram = EXCLUDED.enneagram,
	zodiac = EXCLUDED.zodiac,
	chinese_zodiac = EXCLUDED.chinese_zodiac,
	human_design = EXCLUDED.human_design,
	attachment_style = EXCLUDED.attachment_style,
	love_languages = EXCLUDED.love_languages,
	updated_at = now()
RETURNING created_at, updated_at`

	bigFive, err := marshalNullable(profile.BigFive)
	if err != nil {
		return Profile{}, err
	}
	zodiac, err := marshalNullable(profile.Zodiac)
	if err != nil {
		return Profile{}, err
	}
	chineseZodiac, err := marshalNullable(profile.ChineseZodiac)
	if err != nil {
		return Profile{}, err
	}
	humanDesign, err := marshalNullable(profile.HumanDesign)
	if err != nil {
		return Profile{}, err
	}
	var loveLanguages any
	if len(profile.LoveLanguages) > 0 {
		loveLanguages, err = json.Marshal(profile.LoveLanguages)
		if err != nil {
			return Profile{}, err
		}
	}

	var mbti any
	if profile.MBTI != "" {
		mbti = profile.MBTI
	}
	var enneagram any
	if profile.Enneagram != 0 {
		enneagram = profile.Enneagram
	}
	var attachment any
	if profile.AttachmentStyle != "" {
		attachment = string(profile.AttachmentStyle)
	}

	err = r.DB.QueryRowContext(ctx, query,
		profile.UserID,
		bigFive,
		mbti,
		enneagram,
		zodiac,
		chineseZodiac,
		humanDesign,
		attachment,
		loveLanguages,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Delete removes the user's profile row.
func (r *PGRepo) Delete(ctx context.Context, userID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)

func marshalNullable(value any) (any, error) {
	switch v := value.(type) {
	case *BigFiveScores:
		if v == nil {
			return nil, nil
		}
	case *ZodiacData:
		if v == nil {
			return nil, nil
		}
	case *ChineseZodiacData:
		if v == nil {
			return nil, nil
		}
	case *HumanDesignData:
		if v == nil {
			return nil, nil
		}
	}
	return json.Marshal(value)
}
