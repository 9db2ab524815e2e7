package materials

const curriculumSystemPrompt = "당신은 후기성도 예수그리스도 교회의 공과 준비 전문가입니다. 상세하고 깊이 있는 공과 자료를 작성해주세요. 모든 핵심 교리를 동일한 깊이와 상세함으로 작성해야 합니다. 절대로 뒤의 교리들을 간략하게 처리하지 마세요."

const curriculumUserTemplate = `다음 공과를 바탕으로 %s 대상의 교수 자료를 작성해 주세요.

공과 제목: %s

공과 내용:
%s

다음 구성을 따라 주세요.
1. 공과 개요와 핵심 교리
2. 핵심 교리별 상세 해설 (경전 구절 인용 포함)
3. 대상에 맞춘 토론 질문
4. 적용을 위한 실천 제안`

const chatSystemPrompt = "당신은 후기성도 예수그리스도 교회의 공과 준비 도우미입니다. 답변은 반드시 600자 이내로 간결하게 작성해주세요."

const chatUserTemplate = `공과 제목: %s

공과 내용:
%s

준비된 교수 자료:
%s

질문: %s`
