package store

const (
	deleteSubjectByID = `DELETE FROM subjects WHERE id = ?;`

	insertSubject = `
		INSERT INTO subjects (
			id,
			kind,
			level,
			slug,
			characters,
			meanings,
			readings,
			meaning_mnemonic,
			reading_mnemonic,
			component_subject_ids,
			audio_urls,
			data_updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	deleteAssignmentByID = `DELETE FROM assignments WHERE id = ?;`

	insertAssignment = `
		INSERT INTO assignments (
			id,
			subject_id,
			subject_kind,
			srs_stage,
			unlocked_at,
			started_at,
			available_at,
			burned_at,
			data_updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	deleteStudyMaterialByID = `DELETE FROM study_materials WHERE id = ?;`

	insertStudyMaterial = `
		INSERT INTO study_materials (
			id,
			subject_id,
			meaning_note,
			reading_note,
			meaning_synonyms,
			data_updated_at
		) VALUES (?, ?, ?, ?, ?, ?);`

	deleteUserByID = `DELETE FROM users WHERE id = ?;`

	insertUser = `
		INSERT INTO users (id, username, level, started_at)
		VALUES (?, ?, ?, ?);`

	getUser = `SELECT id, username, level, started_at FROM users WHERE id = ?;`

	getKV    = `SELECT value FROM kv WHERE key = ?;`
	setKV    = `INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
	deleteKV = `DELETE FROM kv WHERE key = ?;`
)
