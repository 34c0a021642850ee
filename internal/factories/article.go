package factories

import (
	"context"
	"fmt"

	"github.com/openmuseum/collections-import/internal/config"
	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
)

// ArticleFactory builds editorial article documents from the narratives
// module.
type ArticleFactory struct {
	media *MediaFactory
}

func NewArticleFactory(media *MediaFactory) *ArticleFactory {
	return &ArticleFactory{media: media}
}

func (f *ArticleFactory) ModuleName() string { return "enarratives" }

func (f *ArticleFactory) Terms() emu.Terms {
	var terms emu.Terms
	terms.Add("DetPurpose_tab", config.ImuArticleQueryString)
	return terms
}

func (f *ArticleFactory) Columns() []string {
	return []string{
		"irn",
		"AdmPublishWebNoPassword",
		"AdmDateModified",
		"AdmTimeModified",
		"NarTitle",
		"NarNarrative",
		"NarNarrativeSummary",
		"DetNarrativeIdentifier",
		"SubSubjects_tab",
		"authors=NarAuthorsRef_tab.(NamFullName,BioLabel,media=MulMultiMediaRef_tab.(irn,MulTitle,MulMimeType,MdaDataSets_tab,metadata=[MdaElement_tab,MdaQualifier_tab,MdaFreeText_tab],DetAlternateText,AdmPublishWebNoPassword,AdmDateModified,AdmTimeModified))",
		"media=MulMultiMediaRef_tab.(irn,MulTitle,MulIdentifier,MulMimeType,MdaDataSets_tab,metadata=[MdaElement_tab,MdaQualifier_tab,MdaFreeText_tab],DetAlternateText,RigCreator_tab,RigSource_tab,RigAcknowledgementCredit,RigCopyrightStatement,RigCopyrightStatus,RigLicence,RigLicenceDetails,ChaRepository_tab,AdmPublishWebNoPassword,AdmDateModified,AdmTimeModified)",
		"parent=AssMasterNarrativeRef.(irn,DetPurpose_tab)",
		"children=AssSubordinateNarrativesRef_tab.(irn,DetPurpose_tab)",
		"relatedarticles=AssRelatedNarrativesRef_tab.(irn,DetPurpose_tab)",
		"relateditemspecimens=ObjObjectsRef_tab.(irn,MdaDataSets_tab)",
	}
}

func (f *ArticleFactory) MakeDocument(ctx context.Context, rec emu.Record) (*entities.Article, error) {
	dateModified, err := parseDateModified(rec)
	if err != nil {
		return nil, err
	}

	article := &entities.Article{
		ID:             fmt.Sprintf("articles/%d", rec.Irn()),
		IsHidden:       isHidden(rec),
		DateModified:   dateModified,
		Title:          rec.GetEncodedString("NarTitle"),
		ContentText:    rec.GetEncodedString("NarNarrative"),
		ContentSummary: rec.GetEncodedString("NarNarrativeSummary"),
		Types:          rec.GetEncodedStrings("DetNarrativeIdentifier"),
		Keywords:       rec.GetEncodedStrings("SubSubjects_tab"),
	}

	for _, authorRec := range rec.GetMaps("authors") {
		if authorRec == nil {
			continue
		}
		author := entities.Author{
			Name:      authorRec.GetString("NamFullName"),
			Biography: authorRec.GetString("BioLabel"),
		}
		for _, mediaRec := range authorRec.GetMaps("media") {
			portrait, err := f.media.MakeAuthorThumbnail(ctx, mediaRec)
			if err != nil {
				return nil, err
			}
			if portrait != nil {
				author.Media = portrait
				break
			}
		}
		if author.Name != "" {
			article.Authors = append(article.Authors, author)
		}
	}

	article.Media, err = f.media.MakeAll(ctx, rec.GetMaps("media"))
	if err != nil {
		return nil, err
	}
	for _, m := range article.Media {
		if m.HasThumbnail() {
			article.ThumbnailUri = m.Thumbnail.Uri
			break
		}
	}

	article.Licence = makeLicenceFromText("cc by-nc")

	if parent := rec.GetMap("parent"); parent != nil &&
		anyEquals(parent.GetEncodedStrings("DetPurpose_tab"), config.ImuArticleQueryString) {
		article.ParentArticleId = fmt.Sprintf("articles/%d", parent.Irn())
	}
	for _, child := range rec.GetMaps("children") {
		if child != nil && anyEquals(child.GetEncodedStrings("DetPurpose_tab"), config.ImuArticleQueryString) {
			article.ChildArticleIds = appendUnique(article.ChildArticleIds,
				fmt.Sprintf("articles/%d", child.Irn()))
		}
	}
	article.RelatedArticleIds = appendRelatedArticles(article.RelatedArticleIds, rec.GetMaps("relatedarticles"))

	for _, related := range rec.GetMaps("relateditemspecimens") {
		if related == nil || related.Irn() == 0 {
			continue
		}
		datasets := related.GetEncodedStrings("MdaDataSets_tab")
		if anyEquals(datasets, config.ImuItemQueryString) {
			article.RelatedItemIds = appendUnique(article.RelatedItemIds,
				fmt.Sprintf("items/%d", related.Irn()))
		}
		if anyEquals(datasets, config.ImuSpecimenQueryString) {
			article.RelatedSpecimenIds = appendUnique(article.RelatedSpecimenIds,
				fmt.Sprintf("specimens/%d", related.Irn()))
		}
	}

	article.Summary = MakeSummary(article.ContentSummary, article.ContentText)

	article.DisplayTitle = article.Title
	if article.DisplayTitle == "" {
		article.DisplayTitle = "Article"
	}
	article.Slug = MakeSlug(article.DisplayTitle)

	return article, nil
}
